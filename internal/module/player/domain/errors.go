package domain

import "errors"

var (
	// ErrPlayerNotRegistered は未登録のプレイヤーコードが指定された場合のエラー
	ErrPlayerNotRegistered = errors.New("player not registered")

	// ErrPlayerAlreadyRegistered は同じコードが二重に登録された場合のエラー
	ErrPlayerAlreadyRegistered = errors.New("player already registered")
)
