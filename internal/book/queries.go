package book

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"

	tableBooks    = "books"
	colID         = "id"
	colAuthor     = "author"
	colLaunchDate = "launch_date"
	colPrice      = "price"
	colTitle      = "title"
)

var bookColumns = []any{colID, colAuthor, colLaunchDate, colPrice, colTitle}

// queries builds the SQL statements shared by the repositories.
type queries struct {
	dialect   goqu.DialectWrapper
	returning bool
}

func newQueries(dialect string) queries {
	return queries{
		dialect:   goqu.Dialect(dialect),
		returning: dialect == DialectPostgres,
	}
}

func (q queries) selectAll() (string, []any, error) {
	return q.dialect.From(tableBooks).
		Select(bookColumns...).
		Order(goqu.I(colID).Asc()).
		Prepared(true).
		ToSQL()
}

func (q queries) selectByID(id int64) (string, []any, error) {
	return q.dialect.From(tableBooks).
		Select(bookColumns...).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
}

func (q queries) insert(b Book) (string, []any, error) {
	stmt := q.dialect.Insert(tableBooks).Rows(record(b))
	if q.returning {
		stmt = stmt.Returning(bookColumns...)
	}
	return stmt.Prepared(true).ToSQL()
}

func (q queries) update(b Book) (string, []any, error) {
	stmt := q.dialect.Update(tableBooks).
		Set(record(b)).
		Where(goqu.C(colID).Eq(b.ID))
	if q.returning {
		stmt = stmt.Returning(bookColumns...)
	}
	return stmt.Prepared(true).ToSQL()
}

func (q queries) delete(id int64) (string, []any, error) {
	return q.dialect.Delete(tableBooks).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
}

func record(b Book) goqu.Record {
	return goqu.Record{
		colAuthor:     b.Author,
		colLaunchDate: b.LaunchDate,
		colPrice:      b.Price,
		colTitle:      b.Title,
	}
}
