package content

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	// ThumbDir is the subdirectory of the images directory holding thumbnails.
	ThumbDir    = "thumbs"
	thumbWidth  = 640
	thumbHeight = 360
)

// ResolveAssets checks each project image under imagesDir. Missing or
// undecodable images are dropped from the returned portfolio; present ones
// get a JPEG thumbnail in imagesDir/thumbs.
func ResolveAssets(p Portfolio, imagesDir string) Portfolio {
	projects := make([]Project, len(p.Projects))
	copy(projects, p.Projects)
	p.Projects = projects

	for i := range p.Projects {
		pr := &p.Projects[i]
		if pr.Image == "" {
			continue
		}
		thumb, err := makeThumbnail(imagesDir, pr.Image)
		if err != nil {
			log.Printf("Omitting image for project %q: %v", pr.Name, err)
			pr.Image = ""
			pr.Thumbnail = ""
			continue
		}
		pr.Thumbnail = thumb
	}
	return p
}

func makeThumbnail(imagesDir, name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("image path %q escapes the images directory", name)
	}
	src := filepath.Join(imagesDir, name)
	if _, err := os.Stat(src); err != nil {
		return "", err
	}

	thumbName := filepath.ToSlash(filepath.Join(ThumbDir, strings.TrimSuffix(name, filepath.Ext(name))+".jpg"))
	dst := filepath.Join(imagesDir, filepath.FromSlash(thumbName))
	if fresh(src, dst) {
		return thumbName, nil
	}

	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	thumb := imaging.Fit(img, thumbWidth, thumbHeight, imaging.Lanczos)
	if err := imaging.Save(thumb, dst, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}
	return thumbName, nil
}

// fresh reports whether dst exists and is newer than src.
func fresh(src, dst string) bool {
	s, err := os.Stat(src)
	if err != nil {
		return false
	}
	d, err := os.Stat(dst)
	if err != nil {
		return false
	}
	return !d.ModTime().Before(s.ModTime())
}
