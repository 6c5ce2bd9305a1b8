// Package integrations provides HTTP clients for package index APIs.
//
// # Overview
//
// This package contains the shared HTTP plumbing used by index clients.
// Each index has its own subpackage:
//
//   - [pypi]: Python Package Index JSON API
//
// # Client Pattern
//
// Index clients embed [Client] and add typed fetch methods:
//
//	c := pypi.NewClient("https://pypi.org/pypi", 10*time.Second)
//	info, err := c.FetchPackage(ctx, "fastapi", "")
//
// [Client] handles:
//   - Per-request timeouts (one [http.Client] timeout for every call)
//   - Default request headers (User-Agent)
//   - Status mapping to [ErrNotFound] and [ErrNetwork]
//
// Requests are issued exactly once. There is no retry and no response cache:
// every analysis run talks to the index directly and the first failure is
// reported to the caller.
//
// [pypi]: github.com/matzehuels/depvis/pkg/integrations/pypi
package integrations
