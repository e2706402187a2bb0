package types

// Threshold below which float values are treated as zero by the
// normalization helpers.
const floatCmpEpsilon = 1e-7
