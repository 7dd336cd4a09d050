package domain

import (
	"fmt"
	"sort"
	"sync"
)

// BuilderFunc は色を受け取りプレイヤーを構築する
type BuilderFunc func(color string) (Player, error)

// Entry は登録済みプレイヤー1件の情報
type Entry struct {
	// Code は登録コード（例: "GEMINI2_0"）
	Code string

	// Description は一覧表示用の説明（モデル識別子など）
	Description string

	builder BuilderFunc
}

// Registry はプレイヤーコードとビルダーの対応を管理する
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry は空のRegistryを作成する
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// Register はプレイヤービルダーを登録する
// 同じコードの二重登録はエラーとする
func (r *Registry) Register(code, description string, builder BuilderFunc) error {
	if code == "" {
		return fmt.Errorf("player code is required")
	}
	if builder == nil {
		return fmt.Errorf("builder is required for player %q", code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[code]; ok {
		return fmt.Errorf("%w: %s", ErrPlayerAlreadyRegistered, code)
	}

	r.entries[code] = Entry{
		Code:        code,
		Description: description,
		builder:     builder,
	}
	return nil
}

// New は登録済みコードからプレイヤーを構築する
func (r *Registry) New(code, color string) (Player, error) {
	r.mu.RLock()
	entry, ok := r.entries[code]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotRegistered, code)
	}
	return entry.builder(color)
}

// Entries は登録済みプレイヤーの一覧をコード順で返す
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})
	return entries
}
