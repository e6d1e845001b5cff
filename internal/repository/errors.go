package repository

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	pkgerrors "github.com/Keaton-Harvey/DatabasesProject/pkg/errors"
)

// translateError 将驱动层错误转换为业务错误类别
//   - 23505 unique_violation      → DuplicateError（携带约束名）
//   - 23503 foreign_key_violation → ReferenceError
//   - 连接类错误                   → ConnectionError
//
// gorm.ErrRecordNotFound 原样返回，由 Service 层决定语义
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pkgerrors.ErrValidation) ||
		errors.Is(err, pkgerrors.ErrReference) ||
		errors.Is(err, pkgerrors.ErrDuplicate) ||
		errors.Is(err, pkgerrors.ErrConsistency) ||
		errors.Is(err, pkgerrors.ErrConnection) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return pkgerrors.NewDuplicate(pgErr.TableName, pgErr.ConstraintName)
		case "23503":
			return pkgerrors.NewReference(pgErr.TableName, pgErr.ConstraintName)
		}
	}

	if isConnectionError(err) {
		return &pkgerrors.ConnectionError{Op: op, Err: err}
	}
	return err
}

func isConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
