package domain

import "errors"

var (
	// ErrAPIKeyNotSet はAPIキーが設定されていない場合のエラー
	ErrAPIKeyNotSet = errors.New("OpenRouter API key not set")

	// ErrNoChoices は応答にchoiceが1件も含まれない場合のエラー
	ErrNoChoices = errors.New("no completion choices returned")

	// ErrInvalidRequest はリクエストが不正な場合のエラー
	ErrInvalidRequest = errors.New("invalid request")
)
