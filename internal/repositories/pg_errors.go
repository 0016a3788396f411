package repositories

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "hr-system/pkg/errors"
)

// mapWriteError переводит ошибки ограничений PostgreSQL в HttpError.
func mapWriteError(err error, entity string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505":
		return apperrors.NewHttpError(
			http.StatusConflict,
			fmt.Sprintf("%s с такими данными уже существует", entity),
			fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.ConstraintName),
			nil,
		)
	case "23503":
		return apperrors.NewHttpError(
			http.StatusBadRequest,
			"Ссылка на несуществующую запись",
			fmt.Errorf("%w: %s", apperrors.ErrBadRequest, pgErr.ConstraintName),
			nil,
		)
	case "23514", "22P02":
		return apperrors.NewHttpError(http.StatusBadRequest, "Некорректные данные", err, nil)
	}
	return err
}
