// SPDX-License-Identifier: MIT

// Package matrix provides the small real linear-algebra core used by the
// qPCA pipeline: a row-major Dense matrix with safe accessors, centralized
// validators, column centering and sample covariance, and a deterministic
// Jacobi eigen-decomposition for symmetric matrices.
//
// The spectral package diagonalizes complex Hermitian density matrices by
// embedding them into real symmetric matrices and calling Eigen; the
// classical package can use Covariance + Eigen as an alternative PCA solver.
//
// Determinism:
//   - All loops run in a fixed i→j order; no map iteration, no randomness.
//   - Eigen pivots on the largest off-diagonal entry scanned in i→j order,
//     so repeated calls on the same input return bit-identical results.
//
// Errors:
//   - Every failure returns one of the sentinels in errors.go, wrapped with
//     an operation tag; match with errors.Is.
package matrix
