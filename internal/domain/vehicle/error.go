package vehicle

import "errors"

var (
	ErrEmptyMake   = errors.New("make is required")
	ErrStaleResult = errors.New("model list superseded by a newer request")
)

const (
	// Тексты-заглушки, которые показываются вместо списка при ошибке загрузки
	MakesPlaceholder  = "Failed to load makes"
	ModelsPlaceholder = "Failed to load models"
)
