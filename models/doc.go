// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the on-disk GraphQL project configuration formats
// shared between the resolver core, the file loaders, and downstream tooling.
//
// The top-level document is [RawConfig], holding an optional client block, an
// optional service block, and an optional engine block. A raw document is what
// a loader produces from apollo.config.json / apollo.config.yaml before any
// defaults have been layered underneath it; the resolved, queryable view lives
// in the config package.
//
// The package also holds the two pure string parsers used during resolution:
// [ParseServiceSpecifier] for "<id>@<tag>" service specifiers and
// [ServiceNameFromKey] for names embedded in "service:<name>" API keys.
package models
