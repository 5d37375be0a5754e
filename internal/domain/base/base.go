// Package base models the physical locations that own assets and personnel.
// Bases are reference data and are never deleted in normal operation.
package base

import (
	"context"
	"fmt"
	"time"
)

type Base struct {
	id        uint
	name      string
	location  string
	createdAt time.Time
}

func NewBase(name, location string) (*Base, error) {
	if name == "" {
		return nil, fmt.Errorf("base name is required")
	}
	return &Base{
		name:      name,
		location:  location,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructBase(id uint, name, location string, createdAt time.Time) (*Base, error) {
	if id == 0 {
		return nil, fmt.Errorf("base ID cannot be zero")
	}
	return &Base{id: id, name: name, location: location, createdAt: createdAt}, nil
}

func (b *Base) ID() uint             { return b.id }
func (b *Base) Name() string         { return b.name }
func (b *Base) Location() string     { return b.location }
func (b *Base) CreatedAt() time.Time { return b.createdAt }

func (b *Base) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("base ID already set")
	}
	if id == 0 {
		return fmt.Errorf("base ID cannot be zero")
	}
	b.id = id
	return nil
}

type Repository interface {
	Create(ctx context.Context, b *Base) error
	GetByID(ctx context.Context, id uint) (*Base, error)
	List(ctx context.Context) ([]*Base, error)
}
