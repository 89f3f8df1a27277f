// Package storage implementa el almacenamiento local de archivos subidos.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jhoicas/Recibos-api/internal/application/usecase"
)

var _ usecase.FileStore = (*LocalStore)(nil)

// LocalStore guarda archivos bajo un directorio raíz en disco local,
// un subdirectorio por categoría.
type LocalStore struct {
	root string
}

// NewLocalStore construye el store y se asegura de que el directorio raíz exista.
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// Root devuelve el directorio raíz (para montarlo como estático en el router).
func (s *LocalStore) Root() string { return s.root }

// Save escribe el contenido en root/category/filename. El nombre viene ya
// saneado del caso de uso (uuid + extensión validada), nunca del cliente.
func (s *LocalStore) Save(category, filename string, content io.Reader) error {
	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", category, err)
	}

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return fmt.Errorf("crear archivo: %w", err)
	}
	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		return fmt.Errorf("escribir archivo: %w", err)
	}
	return dst.Close()
}
