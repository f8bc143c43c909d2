package note

import "errors"

var (
	ErrNoteNotFound           = errors.New("note not found")
	ErrTitleRequired          = errors.New("title is required")
	ErrContentRequired        = errors.New("content is required")
	ErrTextRequired           = errors.New("text is required")
	ErrTargetLanguageRequired = errors.New("target_language is required")
	ErrNothingToTranslate     = errors.New("nothing to translate")
	ErrLLMUnavailable         = errors.New("llm provider is not configured")
	ErrLLMFailed              = errors.New("llm generation failed")
	ErrLLMResponseInvalid     = errors.New("llm response could not be parsed")
)
