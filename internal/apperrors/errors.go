package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindNoImages      Kind = "no_images"
	KindNotSquare     Kind = "not_square"
	KindDecode        Kind = "decode"
	KindCountMismatch Kind = "count_mismatch"
	KindIO            Kind = "io"
)

type Error struct {
	Kind Kind
	// SafeMessage is intended for user-facing output and logs.
	SafeMessage string
	// Cause keeps the original internal error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.SafeMessage); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindNoImages:
		return "No images found in this folder. Please select a different folder."
	case KindNotSquare:
		return "The number of images in this folder is not a perfect square."
	case KindDecode:
		return "A file in this folder could not be decoded as an image."
	case KindCountMismatch:
		return "The folder contents changed between validation and build."
	case KindIO:
		return "Could not write the collage file."
	default:
		return "Collage operation failed."
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

// NoImages reports a folder with zero recognized image files.
func NoImages(dir string) error {
	return New(KindNoImages, "", fmt.Errorf("no recognized images in %s", dir))
}

// NotSquare reports an image count that is not a perfect square.
func NotSquare(count int) error {
	return New(KindNotSquare,
		fmt.Sprintf("Cannot use this folder. %d images found, which is not a perfect square.", count),
		fmt.Errorf("image count %d is not a perfect square", count))
}

// Decode reports a file with a recognized extension that failed to decode.
func Decode(file string, cause error) error {
	return New(KindDecode,
		fmt.Sprintf("Could not decode %s as an image.", file),
		fmt.Errorf("decode %s: %w", file, cause))
}

// CountMismatch reports a defensive re-check failure in the builder.
func CountMismatch(want, got int) error {
	return New(KindCountMismatch, "",
		fmt.Errorf("expected %d images, found %d", want, got))
}

// IO reports a failed write of the output file.
func IO(path string, cause error) error {
	return New(KindIO,
		fmt.Sprintf("Could not write collage to %s.", path),
		fmt.Errorf("write %s: %w", path, cause))
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}
