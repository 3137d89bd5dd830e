// SPDX-License-Identifier: MIT

// Package converters provides adapters between core.Graph (and fitted
// community results) and external representations:
//   - plain edge lists ("u v [w]" per line, '#' comments)
//   - JSON and YAML graph documents
//   - JSON, YAML and text result documents
//   - Graphviz DOT, with vertices coloured by community
//
// Use converters to load graphs for detection and to export what the
// detectors found.
package converters
