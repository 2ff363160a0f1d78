package entity

import "time"

type Profile struct {
	DJName      string `yaml:"djName"      json:"djName"`
	InfinitasID string `yaml:"infinitasId" json:"infinitasId"`
	SPClass     string `yaml:"spClass"     json:"spClass"`
	DPClass     string `yaml:"dpClass"     json:"dpClass"`
	Area        string `yaml:"area"        json:"area"`
}

// DogTag is the profile header with the DJ points totals of the tracker.
type DogTag struct {
	Profile
	SPPoints     int       `json:"spPoints"`
	DPPoints     int       `json:"dpPoints"`
	TotalPoints  int       `json:"totalPoints"`
	LastModified time.Time `json:"lastModified"`
}
