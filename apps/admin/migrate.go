package main

import (
	gormrepos "github.com/trezcool/mahudhurio/storage/database/gorm"
)

var migrateFunc = gormrepos.Migrate // mockable

func (cli *commandLine) migrate() error {
	return migrateFunc(cli.db)
}
