package generator

import "fmt"

func apartmentTitle(bedrooms, _ int, locality string) string {
	return fmt.Sprintf("%dBHK Apartment in %s", bedrooms, locality)
}

func villaTitle(bedrooms, _ int, locality string) string {
	return fmt.Sprintf("Luxurious %dBHK Villa - %s", bedrooms, locality)
}

func plotTitle(_, area int, locality string) string {
	return fmt.Sprintf("Residential Plot (%d sq.ft) - %s", area, locality)
}

func commercialTitle(_, area int, locality string) string {
	return fmt.Sprintf("Commercial Shop (%d sq.ft) - %s", area, locality)
}
