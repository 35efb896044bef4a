package app

import (
	"errors"

	"github.com/maurinmaster/SIA-FKBA/internal/domain"
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

func pageOffset(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	return page, (page - 1) * size
}
