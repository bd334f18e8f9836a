package files

import "image"

type FileManager interface {
	SaveJPEG(path string, img image.Image, quality int) error
}
