package pkg

import "time"

var zonaArgentina = cargarZona()

func cargarZona() *time.Location {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		// Sin tzdata en el sistema se usa el offset fijo de Argentina
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

// FechaActual devuelve la fecha del servidor en formato DD/MM/YYYY, HH:MM:SS
// en hora de Argentina. Es la marca que se guarda al crear un comentario.
func FechaActual() string {
	return time.Now().In(zonaArgentina).Format("02/01/2006, 15:04:05")
}
