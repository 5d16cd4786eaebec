//go:build gtxt

package ftkit

// The gtxt build compiles the package without Ebitengine, so the
// EbitenPathSink adapter is unavailable. [AdderSink] and
// [RasterizerSink] cover pure Go rasterization targets.
