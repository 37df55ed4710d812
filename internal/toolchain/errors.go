package toolchain

import "errors"

// ErrRuntimeMissing indicates the runtime CLI could not be executed. There is
// no install path for the runtime, so this is unrecoverable.
var ErrRuntimeMissing = errors.New("runtime CLI not found")

// ErrDecompilerInstallFailed indicates the decompiler tool was missing and the
// single install attempt did not make it available.
var ErrDecompilerInstallFailed = errors.New("decompiler tool install failed")
