package engine

// Engine identifies a database backend that schema definitions target.
// These are placeholders for external engine implementations; this module
// defines no behavior for them.
type Engine string

const (
	MSSQL      Engine = "mssql"
	MariaDB    Engine = "mariadb"
	Mongo      Engine = "mongo"
	MySQL      Engine = "mysql"
	Oracle     Engine = "oracle"
	PostgreSQL Engine = "postgresql"
	SQLite     Engine = "sqlite"
)

// All returns the supported backend targets.
func All() []Engine {
	return []Engine{MSSQL, MariaDB, Mongo, MySQL, Oracle, PostgreSQL, SQLite}
}

func (e Engine) String() string {
	return string(e)
}

// Valid reports whether e is one of the supported backend targets.
func (e Engine) Valid() bool {
	switch e {
	case MSSQL, MariaDB, Mongo, MySQL, Oracle, PostgreSQL, SQLite:
		return true
	}
	return false
}
