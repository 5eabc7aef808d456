package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrDatasetNotLoaded = goerr.New("dataset is not loaded")
	ErrLocationNotFound = goerr.New("location not found")
	ErrEmptyChart       = goerr.New("no data in the selected range")
)

// Error tags for categorization
var (
	// ErrTagValidation marks errors caused by user input; their message is shown to the user
	ErrTagValidation = goerr.NewTag("validation")
)
