package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"

	log "github.com/sirupsen/logrus"
)

const (
	IconDir       = "btn_imgs"
	CheckedFile   = "checked.png"
	UncheckedFile = "unchecked.png"
)

var ErrMissingIcon = errors.New("missing icon")

type Icons struct {
	Checked   image.Image
	Unchecked image.Image
}

// LoadIcons decodes both button images from dir. Either one missing or
// unreadable fails the whole load.
func LoadIcons(fsys fs.FS, dir string) (Icons, error) {
	checked, err := decode(fsys, path.Join(dir, CheckedFile))
	if err != nil {
		return Icons{}, err
	}
	unchecked, err := decode(fsys, path.Join(dir, UncheckedFile))
	if err != nil {
		return Icons{}, err
	}
	return Icons{Checked: checked, Unchecked: unchecked}, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", name, ErrMissingIcon, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", name, ErrMissingIcon, err)
	}
	log.WithFields(log.Fields{
		"file":   name,
		"format": format,
		"size":   img.Bounds().Size(),
	}).Debug("icon loaded")
	return img, nil
}
