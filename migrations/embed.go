// Package migrations встраивает SQL-миграции сервисов в бинарный файл.
package migrations

import "embed"

// BoardDir - каталог миграций доски объявлений внутри Board.
const BoardDir = "board"

// Board содержит миграции доски объявлений.
//
//go:embed board/*.sql
var Board embed.FS
