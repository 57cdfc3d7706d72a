// Package relevance scores each surviving tree's seed for retention and
// selects the Ni most relevant ones to carry into the next iteration —
// spec.md §4.8, §6.
//
// Grounded on original_source/src/iftSICLE.c's iftSICLE_CalcSeedPrio and
// iftSICLE_RemSeeds.
package relevance
