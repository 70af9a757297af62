package spectrum

// glycineZwitterion lists the vibrational peaks of the glycine zwitterion
// (NH3+/COO- form) as (wavenumber in cm^-1, relative intensity) pairs.
// Values are taken as asserted from the IR/Raman literature and are not
// re-derived here.
var glycineZwitterion = []Mode{
	{3330, 0.55}, {3200, 0.60}, {3020, 0.25}, {2940, 0.30},
	{1650, 1.00}, {1498, 0.75}, {1410, 0.90}, {1330, 0.40},
	{1232, 0.40}, {1209, 0.30}, {1040, 0.80}, {929, 0.30},
	{889, 0.30}, {616, 0.50}, {513, 0.40},
}

// Glycine returns the intensity-normalized mode table of the glycine
// zwitterion.
func Glycine() Table {
	t, err := NewTable(glycineZwitterion)
	if err != nil {
		// The embedded table is valid by construction.
		panic(err)
	}
	return t
}
