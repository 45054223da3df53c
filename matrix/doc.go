// Package matrix offers dense linear-algebra views of a core.Topology for
// validation and diagnostics.
//
// The matrix package provides:
//
//   - IncidenceMatrix: the signed terminal×connector matrix B and its
//     Laplacian B·Bᵀ.
//   - Operator: the symmetric bipartite operator H = [[0, B], [Bᵀ, 0]] with
//     conversions between sparse snapshots and dense vectors.
//   - Diagnose: orthogonality loss and three-term residual of a recurrence
//     result, computed densely with gonum.
//
// The recurrence itself never builds these matrices. They cost O(V²)
// memory and serve as an independent oracle on small and medium networks.
package matrix
