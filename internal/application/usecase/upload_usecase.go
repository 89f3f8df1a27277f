package usecase

import (
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Recibos-api/internal/application/dto"
	"github.com/jhoicas/Recibos-api/internal/domain"
	"github.com/jhoicas/Recibos-api/internal/domain/repository"
)

// FileStore puerto de almacenamiento de archivos subidos. Save escribe el
// contenido bajo el nombre dado dentro de la categoría (subdirectorio) y
// devuelve error si no puede persistirlo.
type FileStore interface {
	Save(category, filename string, content io.Reader) error
}

// Extensiones de imagen aceptadas para el logo.
var allowedLogoExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

const logoCategory = "logos"

// UploadUseCase gestiona la carga del logo del negocio.
type UploadUseCase struct {
	store        FileStore
	businessRepo repository.BusinessRepository
	maxSize      int64
	publicPath   string
}

// NewUploadUseCase construye el caso de uso. publicPath es el prefijo HTTP
// bajo el que el router sirve los archivos (ej. "/api/uploads").
func NewUploadUseCase(store FileStore, businessRepo repository.BusinessRepository, maxSize int64, publicPath string) *UploadUseCase {
	return &UploadUseCase{store: store, businessRepo: businessRepo, maxSize: maxSize, publicPath: publicPath}
}

// SaveLogo valida y almacena el logo, y si el usuario ya tiene perfil de
// negocio actualiza su logo_url. El perfil puede no existir todavía: en ese
// caso el cliente manda la URL devuelta al crear el perfil.
func (uc *UploadUseCase) SaveLogo(userID, originalName string, size int64, content io.Reader) (*dto.UploadLogoResponse, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedLogoExts[ext] {
		return nil, fmt.Errorf("%w: extensión %q", domain.ErrUnsupportedUpload, ext)
	}
	if size > uc.maxSize {
		return nil, domain.ErrFileTooLarge
	}

	filename := fmt.Sprintf("%s_%s%s", userID, strings.ReplaceAll(uuid.New().String(), "-", "")[:12], ext)
	if err := uc.store.Save(logoCategory, filename, io.LimitReader(content, uc.maxSize)); err != nil {
		return nil, fmt.Errorf("guardando logo: %w", err)
	}

	logoURL := path.Join(uc.publicPath, logoCategory, filename)

	business, err := uc.businessRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if business != nil {
		business.LogoURL = logoURL
		business.UpdatedAt = time.Now()
		if err := uc.businessRepo.Update(business); err != nil {
			return nil, err
		}
	}

	return &dto.UploadLogoResponse{LogoURL: logoURL, Filename: filename}, nil
}
