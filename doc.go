// SPDX-License-Identifier: MIT

// Package qpca is a small playground contrasting a quantum-inspired
// principal component analysis (qPCA) with classical PCA on synthetic
// two-dimensional data.
//
// The pipeline:
//
//	dataset → encoding → density → spectral (qPCA)
//	dataset → classical (PCA baseline)
//	results → plots (SVG/PNG/PDF charts)
//
// Everything runs on a classical computer: qubits are simulated with exact
// statevectors, and the "quantum" eigen-estimation is an exact Hermitian
// diagonalization standing in for phase estimation.
//
// Subpackages:
//
//	matrix/    real dense matrix, validators, Jacobi eigen, covariance
//	dataset/   seeded Gaussian and cyclic binary datasets
//	quantum/   statevectors and a tiny n-qubit register simulator
//	encoding/  angle and amplitude encodings of 2-D samples
//	density/   empirical density matrices (complex, Hermitian, trace 1)
//	overlap/   SWAP-test overlap estimation
//	spectral/  qPCA eigenpair estimation
//	classical/ PCA baseline on gonum
//	plots/     chart rendering on gonum/plot
//	pipeline/  the end-to-end orchestrator
//	config/    flag parsing and validation
//	logger/    zerolog construction
//	cmd/qpca/  the command line entry point
//
// Errors: every invalid input wraps ErrInvalidArgument, so callers can
// check the category with errors.Is and the precise cause with the
// package-level sentinels.
package qpca
