// Package filemgr saves uploaded banner and profile images and generates
// thumbnails for listing pages.
package filemgr

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"cloudstage/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// Upload directories, one per picture kind.
const (
	BannerDir = "./static/bannerpic"
	PhotoDir  = "./static/artistpic"
	ThumbSub  = "thumb"
)

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func EnsureDirs() error {
	for _, dir := range []string{BannerDir, PhotoDir} {
		if err := os.MkdirAll(filepath.Join(dir, ThumbSub), 0755); err != nil {
			return fmt.Errorf("filemgr: create %s: %w", dir, err)
		}
	}
	return nil
}

func saveUpload(w http.ResponseWriter, r *http.Request, field, dir, urlPrefix string) {
	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10MB limit
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile(field)
	if err != nil {
		http.Error(w, field+" file missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, handler) {
		return
	}
	ext := filepath.Ext(handler.Filename)
	if !allowedExt[ext] {
		http.Error(w, "Unsupported file type", http.StatusBadRequest)
		return
	}

	id := uuid.New().String()
	filename := fmt.Sprintf("%s%s", id, ext)
	path := filepath.Join(dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		http.Error(w, "Unable to save file", http.StatusInternalServerError)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		http.Error(w, "Error saving file", http.StatusInternalServerError)
		return
	}

	// Thumbnail failures are non-fatal; the full image still serves.
	createThumb(path, filepath.Join(dir, ThumbSub, filename), 300, 200)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"url": urlPrefix + filename,
	})
}

func createThumb(src, dst string, width, height int) {
	img, err := imaging.Open(src)
	if err != nil {
		return
	}
	thumb := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
	_ = imaging.Save(thumb, dst)
}

// UploadBanner stores an event banner image.
func UploadBanner(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	saveUpload(w, r, "banner", BannerDir, "/static/bannerpic/")
}

// UploadPhoto stores an artist profile picture.
func UploadPhoto(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	saveUpload(w, r, "photo", PhotoDir, "/static/artistpic/")
}
