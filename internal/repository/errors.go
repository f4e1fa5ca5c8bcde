package repository

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
	ErrReference = errors.New("foreign key violation")
)

// translate maps driver-level gorm errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Join(ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated), sqliteForeignKey(err):
		return errors.Join(ErrReference, err)
	}
	return err
}

// sqliteForeignKey catches violations the sqlite dialect leaves untranslated.
// A RESTRICT action on delete fails with SQLITE_CONSTRAINT_TRIGGER rather
// than SQLITE_CONSTRAINT_FOREIGNKEY.
func sqliteForeignKey(err error) bool {
	var sqErr sqlite3.Error
	if !errors.As(err, &sqErr) || sqErr.Code != sqlite3.ErrConstraint {
		return false
	}
	return sqErr.ExtendedCode == sqlite3.ErrConstraintForeignKey ||
		strings.Contains(sqErr.Error(), "FOREIGN KEY constraint failed")
}

// updateExisting writes every column of model except the omitted ones and
// fails with ErrNotFound when the row no longer exists.
func updateExisting(db *gorm.DB, model any, omit ...string) error {
	res := db.Model(model).Select("*").Omit(append([]string{"CreatedAt"}, omit...)...).Updates(model)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
