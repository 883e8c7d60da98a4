package media

import "strings"

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// IsImageExt returns true if the extension is a decodable image format.
func IsImageExt(ext string) bool {
	return imageExts[strings.ToLower(ext)]
}

// SupportedExtsList returns a human-readable list of supported image formats.
func SupportedExtsList() string {
	return ".png, .jpg, .jpeg, .gif, .webp"
}
