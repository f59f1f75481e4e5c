package sqlbuilder

import "github.com/Masterminds/squirrel"

// Поддерживаемые драйверы БД
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// For возвращает squirrel builder с плейсхолдерами для указанного драйвера
// postgres: $1, $2...; sqlite и прочие: ?
func For(driver string) squirrel.StatementBuilderType {
	if driver == DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}
