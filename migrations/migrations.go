package migrations

import "embed"

// FS встроенные SQL миграции, применяются при старте сервиса через goose
//
//go:embed *.sql
var FS embed.FS
