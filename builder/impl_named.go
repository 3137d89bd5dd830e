// SPDX-License-Identifier: MIT
// Package: ncd/builder
//
// impl_named.go - fixed named graphs: Petersen, Tutte, KarateClub.
//
// Contract:
//   - Vertices idFn(0..n-1); edges emitted from the tables below in ascending
//     (u, v) order with u < v, mirrored on directed graphs.
//   - KarateClub marks each member with Metadata[ClubKey] ("Mr. Hi" or
//     "Officer"), the faction observed after the split.

package builder

import "github.com/katalvlaran/ncd/core"

const (
	methodPetersen   = "Petersen"
	methodTutte      = "Tutte"
	methodKarateClub = "KarateClub"

	petersenNodes = 10
	tutteNodes    = 46
	karateNodes   = 34
)

// ClubKey is the vertex Metadata key holding the KarateClub faction.
const ClubKey = "club"

// Karate club factions.
const (
	ClubMrHi    = "Mr. Hi"
	ClubOfficer = "Officer"
)

// petersenAdj: outer 5-cycle, five spokes, inner pentagram.
var petersenAdj = map[int][]int{
	0: {1, 4, 5},
	1: {2, 6},
	2: {3, 7},
	3: {4, 8},
	4: {9},
	5: {7, 8},
	6: {8, 9},
	7: {9},
}

// tutteAdj is the 3-regular, non-Hamiltonian Tutte graph (46 vertices, 69 edges).
var tutteAdj = map[int][]int{
	0:  {1, 2, 3},
	1:  {4, 26},
	2:  {10, 11},
	3:  {18, 19},
	4:  {5, 33},
	5:  {6, 29},
	6:  {7, 27},
	7:  {8, 14},
	8:  {9, 38},
	9:  {10, 37},
	10: {39},
	11: {12, 39},
	12: {13, 35},
	13: {14, 15},
	14: {34},
	15: {16, 22},
	16: {17, 44},
	17: {18, 43},
	18: {45},
	19: {20, 45},
	20: {21, 41},
	21: {22, 23},
	22: {40},
	23: {24, 27},
	24: {25, 32},
	25: {26, 31},
	26: {33},
	27: {28},
	28: {29, 32},
	29: {30},
	30: {31, 33},
	31: {32},
	34: {35, 38},
	35: {36},
	36: {37, 39},
	37: {38},
	40: {41, 44},
	41: {42},
	42: {43, 45},
	43: {44},
}

// karateAdj is Zachary's karate club network (34 members, 78 ties).
var karateAdj = map[int][]int{
	0:  {1, 2, 3, 4, 5, 6, 7, 8, 10, 11, 12, 13, 17, 19, 21, 31},
	1:  {2, 3, 7, 13, 17, 19, 21, 30},
	2:  {3, 7, 8, 9, 13, 27, 28, 32},
	3:  {7, 12, 13},
	4:  {6, 10},
	5:  {6, 10, 16},
	6:  {16},
	8:  {30, 32, 33},
	9:  {33},
	13: {33},
	14: {32, 33},
	15: {32, 33},
	18: {32, 33},
	19: {33},
	20: {32, 33},
	22: {32, 33},
	23: {25, 27, 29, 32, 33},
	24: {25, 27, 31},
	25: {31},
	26: {29, 33},
	27: {33},
	28: {31, 33},
	29: {32, 33},
	30: {32, 33},
	31: {32, 33},
	32: {33},
}

// karateOfficers lists the members who followed the officer after the split.
var karateOfficers = map[int]struct{}{
	9:  {},
	14: {},
	15: {},
	18: {},
	20: {},
	22: {},
	23: {},
	24: {},
	25: {},
	26: {},
	27: {},
	28: {},
	29: {},
	30: {},
	31: {},
	32: {},
	33: {},
}

// Petersen returns a Constructor that builds the Petersen graph.
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return addFixture(g, cfg, methodPetersen, petersenNodes, petersenAdj)
	}
}

// Tutte returns a Constructor that builds the Tutte graph.
func Tutte() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return addFixture(g, cfg, methodTutte, tutteNodes, tutteAdj)
	}
}

// KarateClub returns a Constructor that builds Zachary's karate club graph
// with the faction of each member in Metadata[ClubKey].
func KarateClub() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := addFixture(g, cfg, methodKarateClub, karateNodes, karateAdj); err != nil {
			return err
		}
		for i := 0; i < karateNodes; i++ {
			v, err := g.Vertex(cfg.idFn(i))
			if err != nil {
				return err
			}
			v.Metadata[ClubKey] = ClubMrHi
			if _, ok := karateOfficers[i]; ok {
				v.Metadata[ClubKey] = ClubOfficer
			}
		}

		return nil
	}
}
