// Package peaks maps spectrum bins to frequencies and extracts spectral peaks.
//
// [FrequencyAxis] builds the full wrap-around axis of an N-point transform and
// [OneSidedAxis] the positive-frequency axis that lines up with a one-sided
// power spectrum. [Find] locates local maxima of a power spectrum by the sign
// change of its first difference and keeps those above a threshold.
package peaks
