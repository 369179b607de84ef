package collage

import (
	"image"
	"os"

	// Register the decoders for every recognized gallery extension.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// loadImage opens and decodes one source image. Decoding sniffs the
// registered format from the file contents, so a corrupt file with a
// recognized extension still fails here.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
