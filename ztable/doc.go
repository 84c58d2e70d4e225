// SPDX-License-Identifier: MIT

// Package ztable builds and renders lookup tables: the standard normal
// cumulative table (rows z = −3.9…3.9, columns +0.00…+0.09) and a two-sided
// Student's t critical-value table.
//
// Tables are plain values; Render writes them as aligned text, JSON or YAML.
package ztable
