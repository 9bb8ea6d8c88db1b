package catalog

import "errors"

var (
	// ErrInvalidDefinition возвращается, когда описание каталога некорректно
	ErrInvalidDefinition = errors.New("catalog: invalid definition")

	// ErrLoadFile возвращается, когда файл с тарифами не удалось прочитать
	ErrLoadFile = errors.New("catalog: failed to load rates file")
)
