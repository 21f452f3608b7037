package valueobjects

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// ProfilePhotoPrefix é o "diretório" das fotos de perfil no bucket
const ProfilePhotoPrefix = "fotoProfile"

// ProfilePhotoKey monta a chave de armazenamento <prefix>/<epoch-millis>_<arquivo>
func ProfilePhotoKey(now time.Time, filename string) string {
	return fmt.Sprintf("%s/%d_%s", ProfilePhotoPrefix, now.UnixMilli(), sanitizeFilename(filename))
}

// ProfilePhotoKeyFromURL recupera a chave a partir da URL pública gravada.
// Apenas o último segmento da URL é considerado.
func ProfilePhotoKeyFromURL(publicURL string) (string, bool) {
	publicURL = strings.TrimSpace(publicURL)
	if publicURL == "" {
		return "", false
	}

	if idx := strings.IndexAny(publicURL, "?#"); idx != -1 {
		publicURL = publicURL[:idx]
	}

	segment := path.Base(strings.TrimRight(publicURL, "/"))
	if segment == "" || segment == "." || segment == "/" {
		return "", false
	}

	return ProfilePhotoPrefix + "/" + segment, true
}

// sanitizeFilename remove componentes de diretório enviados pelo cliente
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	base := path.Base(filename)
	if base == "." || base == "/" {
		return "upload"
	}
	return base
}
