package salon

// SquaredDistance returns the squared Euclidean distance between two
// coordinate pairs. Ranking only needs relative order, so the square root
// is skipped.
func SquaredDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := lat2 - lat1
	dlon := lon2 - lon1
	return dlat*dlat + dlon*dlon
}
