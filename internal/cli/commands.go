package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// RunList prints the entries of dir, one per line. An empty dir lists the
// working directory.
func RunList(ctx context.Context, c *Context, dir string) error {
	names, err := c.Shell.List(ctx, dir)
	if err != nil {
		return err
	}
	c.UI.Lines(names)
	return nil
}

// RunCat prints the contents of paths in order.
func RunCat(ctx context.Context, c *Context, paths []string) error {
	contents, err := c.Shell.ReadAll(ctx, paths...)
	if err != nil {
		return err
	}
	for _, text := range contents {
		c.UI.Result(text)
	}
	return nil
}

// RunCopy copies args[:n-1] to args[n-1]. When confirm is set the user is
// asked before an existing file is replaced; declined sources are skipped.
func RunCopy(ctx context.Context, c *Context, args []string, confirm bool) error {
	args, ok, err := confirmArgs(c, args, confirm, "copied")
	if err != nil || !ok {
		return err
	}

	if err := c.Shell.Copy(ctx, args...); err != nil {
		return err
	}
	c.Logger.Debug("copy finished", zap.Strings("args", args))
	return nil
}

// RunMove moves args[:n-1] to args[n-1], with the same confirmation rules
// as RunCopy.
func RunMove(ctx context.Context, c *Context, args []string, confirm bool) error {
	args, ok, err := confirmArgs(c, args, confirm, "moved")
	if err != nil || !ok {
		return err
	}

	if err := c.Shell.Move(ctx, args...); err != nil {
		return err
	}
	c.Logger.Debug("move finished", zap.Strings("args", args))
	return nil
}

// confirmArgs applies ConfirmOverwrite when confirm is set. ok is false
// when there is nothing left to do.
func confirmArgs(c *Context, args []string, confirm bool, verb string) ([]string, bool, error) {
	if !confirm || len(args) < 2 {
		return args, true, nil
	}

	kept, err := ConfirmOverwrite(c, args)
	if err != nil {
		return nil, false, err
	}
	if kept == nil {
		c.UI.Infof("Nothing %s", verb)
		return nil, false, nil
	}

	if skipped := len(args) - len(kept); skipped > 0 {
		c.UI.Warningf("Skipped %d existing file(s)", skipped)
	}
	return kept, true, nil
}

// RunTouch creates or touches every path in order, stopping at the first
// failure.
func RunTouch(ctx context.Context, c *Context, paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("touch: missing file operand")
	}
	for _, p := range paths {
		if err := c.Shell.CreateFile(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RunMkdir creates every directory in order, stopping at the first failure.
func RunMkdir(ctx context.Context, c *Context, paths []string, parents bool) error {
	if len(paths) == 0 {
		return fmt.Errorf("mkdir: missing operand")
	}
	shell := c.Facade(parents)
	for _, p := range paths {
		if err := shell.CreateDirectory(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// ConfirmOverwrite asks before each existing destination of a cp/mv
// invocation is replaced. It returns the arguments to run with, or nil when
// every source was declined. Argument-count errors are left to the facade.
func ConfirmOverwrite(c *Context, args []string) ([]string, error) {
	if len(args) < 2 {
		return args, nil
	}

	sources, dest := args[:len(args)-1], args[len(args)-1]
	if len(sources) == 1 {
		ok, err := confirmTarget(c, dest)
		if err != nil || !ok {
			return nil, err
		}
		return args, nil
	}

	var kept []string
	for _, src := range sources {
		ok, err := confirmTarget(c, filepath.Join(dest, filepath.Base(src)))
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, src)
		}
	}

	switch len(kept) {
	case 0:
		return nil, nil
	case 1:
		// A lone source must name its target explicitly, otherwise it
		// would be treated as a file-to-file operation onto dest.
		return []string{kept[0], filepath.Join(dest, filepath.Base(kept[0]))}, nil
	default:
		return append(kept, dest), nil
	}
}

// confirmTarget reports whether target may be written: it does not exist as
// a regular file, or the user agreed to replace it.
func confirmTarget(c *Context, target string) (bool, error) {
	info, err := os.Stat(target)
	if err != nil || info.IsDir() {
		return true, nil
	}
	return c.UI.PromptYesNo(fmt.Sprintf("Overwrite %s?", target), false)
}
