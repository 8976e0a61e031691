package catches

import "slices"

// Weather conditions offered by the entry form.
const (
	WeatherSunny        = "Ensoleillé"
	WeatherPartlyCloudy = "Partiellement nuageux"
	WeatherCloudy       = "Nuageux"
	WeatherLightRain    = "Pluie légère"
	WeatherHeavyRain    = "Pluie forte"
	WeatherStorm        = "Orage"
)

var weatherOptions = []string{
	WeatherSunny,
	WeatherPartlyCloudy,
	WeatherCloudy,
	WeatherLightRain,
	WeatherHeavyRain,
	WeatherStorm,
}

// WeatherOptions returns the fixed weather choices in display order.
func WeatherOptions() []string {
	return slices.Clone(weatherOptions)
}

// IsWeather reports whether s is one of the fixed weather choices.
func IsWeather(s string) bool {
	return slices.Contains(weatherOptions, s)
}
