package postgres

import "database/sql"

// Queryer é a superfície mínima de consulta usada pelos repositórios.
// *sql.DB e *sql.Tx satisfazem a interface, o que permite reusar as mesmas
// funções de scan dentro e fora de transações.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
