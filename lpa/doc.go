// SPDX-License-Identifier: MIT

// Package lpa implements label propagation community detection.
//
// Every vertex starts with a unique label. A vertex repeatedly adopts a label
// of maximal weighted frequency among its neighbours until every vertex
// holds such a label; vertices sharing a label form a community.
//
// Two update schedules are available:
//
//   - Async: vertices are updated one at a time in a seeded random order; a
//     vertex whose label is not among the most frequent ones takes one of
//     them at random.
//   - Semi: semi-synchronous propagation (Cordasco and Gargano, 2011). The
//     graph is coloured greedily and each colour class is updated together
//     with Prec-Max tie breaking: keep the current label if it is tied for
//     the maximum, otherwise take the largest. Undirected graphs only.
//
// On directed graphs an out-neighbour contributes w·beta and an in-neighbour
// w·alpha; both add up when edges run both ways. Self-loops are ignored.
package lpa
