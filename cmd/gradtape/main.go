// Package main provides the gradtape CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/born-ml/gradtape/autodiff"
	"github.com/born-ml/gradtape/backend/cpu"
	"github.com/born-ml/gradtape/internal/parallel"
	"github.com/born-ml/gradtape/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("gradtape %s\n", version)
			return
		case "demo":
			level := slog.LevelInfo
			if len(os.Args) > 2 && os.Args[2] == "-v" {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			if err := demo(context.Background()); err != nil {
				slog.Error("demo failed", "error", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("gradtape - reverse-mode automatic differentiation for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo [-v]  Run example gradient computations")
}

func demo(ctx context.Context) error {
	b := cpu.New[float64]()

	if err := leakyDemo(b); err != nil {
		return errors.Wrap(err, "leaky relu")
	}
	if err := meanDemo(b); err != nil {
		return errors.Wrap(err, "mean")
	}
	return concurrentDemo(ctx, b)
}

func leakyDemo(b tensor.Backend[float64]) error {
	x, err := autodiff.FromSlice(b, []float64{-2, -1, 1, 2}, tensor.Const(4))
	if err != nil {
		return err
	}
	y, err := autodiff.LeakyReLU(x.Trace(), 0.5)
	if err != nil {
		return err
	}
	out := y.Data()
	loss, err := autodiff.Sum(y)
	if err != nil {
		return err
	}
	grads, err := autodiff.Backward(loss)
	if err != nil {
		return err
	}
	g, err := grads.Of(x)
	if err != nil {
		return err
	}
	slog.Info("leaky_relu", "x", x.Data(), "y", out, "dy/dx", g.Data)
	return nil
}

func meanDemo(b tensor.Backend[float64]) error {
	x, err := autodiff.FromSlice(b, []float64{1, 2, 3, 4, 5, 6}, tensor.Const(2, 3))
	if err != nil {
		return err
	}
	m, err := autodiff.Mean(x.Trace())
	if err != nil {
		return err
	}
	v, err := m.Item()
	if err != nil {
		return err
	}
	grads, err := autodiff.Backward(m)
	if err != nil {
		return err
	}
	g, err := grads.Of(x)
	if err != nil {
		return err
	}
	slog.Info("mean", "shape", x.Shape(), "value", v, "grad", g.Data)
	return nil
}

// concurrentDemo builds and differentiates independent graphs on several
// goroutines sharing one backend and its ID allocator.
func concurrentDemo(ctx context.Context, b tensor.Backend[float64]) error {
	const graphs = 8
	results := make([]float64, graphs)
	err := parallel.Run(ctx, graphs, func(_ context.Context, i int) error {
		x, err := autodiff.Full(b, tensor.Scalar(), float64(i))
		if err != nil {
			return err
		}
		wide, err := autodiff.BroadcastTop(x.Trace(), tensor.Const(3, 4))
		if err != nil {
			return err
		}
		sq, err := autodiff.Square(wide)
		if err != nil {
			return err
		}
		loss, err := autodiff.Sum(sq)
		if err != nil {
			return err
		}
		grads, err := autodiff.Backward(loss)
		if err != nil {
			return err
		}
		g, err := grads.Of(x)
		if err != nil {
			return err
		}
		results[i] = g.Data[0]
		return nil
	}, parallel.DefaultConfig())
	if err != nil {
		return err
	}
	slog.Info("concurrent graphs", "count", graphs, "grads", results)
	return nil
}
