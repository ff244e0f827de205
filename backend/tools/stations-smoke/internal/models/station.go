package models

// StationPayload is the body of POST /api/stations.
type StationPayload struct {
	Nom         string `json:"nom" yaml:"nom" env:"STATIONS_STATION_NOM"`
	Description string `json:"description" yaml:"description" env:"STATIONS_STATION_DESCRIPTION"`
	Couleur     string `json:"couleur" yaml:"couleur" env:"STATIONS_STATION_COULEUR"`
}
