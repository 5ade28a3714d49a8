package turtleshell

import (
	"context"
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

// ReadAll reads every file in paths and returns their UTF-8 decoded
// contents in input order. Files are read concurrently. With no paths it
// returns an empty result without touching the filesystem. The first
// failing read is reported and no partial result is returned.
func (s *Shell) ReadAll(ctx context.Context, paths ...string) (contents []string, err error) {
	if len(paths) == 0 {
		return []string{}, nil
	}

	start := time.Now()
	defer func() { s.trace("cat", start, err, paths...) }()

	if len(paths) == 1 {
		if err := ctx.Err(); err != nil {
			return nil, cancelled("cat", KindFileRead, err)
		}
		text, err := readText(paths[0])
		if err != nil {
			return nil, err
		}
		return []string{text}, nil
	}

	contents = make([]string, len(paths))
	err = s.fanOut(ctx, "cat", KindFileRead, len(paths), func(i int) error {
		text, err := readText(paths[i])
		if err != nil {
			return err
		}
		contents[i] = text
		return nil
	})
	if err != nil {
		return nil, err
	}
	return contents, nil
}

// Read returns the UTF-8 decoded content of a single file.
func (s *Shell) Read(ctx context.Context, path string) (string, error) {
	contents, err := s.ReadAll(ctx, path)
	if err != nil {
		return "", err
	}
	return contents[0], nil
}

// ReadText returns the contents of paths concatenated in order, as cat
// prints them. With no paths it returns "".
func (s *Shell) ReadText(ctx context.Context, paths ...string) (string, error) {
	contents, err := s.ReadAll(ctx, paths...)
	if err != nil {
		return "", err
	}
	return strings.Join(contents, ""), nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", newError("cat", KindFileRead, "failed to read file", path, err)
	}
	if !utf8.Valid(data) {
		return strings.ToValidUTF8(string(data), string(utf8.RuneError)), nil
	}
	return string(data), nil
}
