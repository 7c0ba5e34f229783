package models

// View adalah layar yang sedang aktif di perangkat kasir.
type View string

const (
	ViewHome        View = "home"
	ViewTables      View = "tables"
	ViewStatus      View = "status"
	ViewMenu        View = "menu"
	ViewHistory     View = "history"
	ViewViewDetails View = "viewDetails"
)

var views = []View{ViewHome, ViewTables, ViewStatus, ViewMenu, ViewHistory, ViewViewDetails}

func (v View) Valid() bool {
	for _, known := range views {
		if v == known {
			return true
		}
	}
	return false
}
