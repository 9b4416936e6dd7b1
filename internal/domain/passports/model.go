package passports

import "strings"

// ID es el identificador único e inmutable que asigna el Allocator al emitir un pasaporte.
type ID string

// Address identifica a una cuenta (caller, emisor o holder).
type Address string

// Passport es el certificado de un animal rescatado.
//
// Los campos son privados: solo AnimalName cambia después de construido, y únicamente
// vía Registry.UpdateAnimalName. El holder NO vive aquí; lo lleva Holdings.
type Passport struct {
	id         ID
	animalName string
	animalType string
	rescueDate int64
	issuedBy   Address

	// version la maneja Holdings para serializar escrituras por objeto.
	version uint64
}

// Restore reconstruye un pasaporte ya emitido (para adapters de almacenamiento).
func Restore(id ID, animalName, animalType string, rescueDate int64, issuedBy Address, version uint64) Passport {
	return Passport{
		id:         id,
		animalName: animalName,
		animalType: animalType,
		rescueDate: rescueDate,
		issuedBy:   issuedBy,
		version:    version,
	}
}

func (p Passport) ID() ID             { return p.id }
func (p Passport) AnimalName() string { return p.animalName }
func (p Passport) AnimalType() string { return p.animalType }
func (p Passport) RescueDate() int64  { return p.rescueDate }
func (p Passport) IssuedBy() Address  { return p.issuedBy }
func (p Passport) Version() uint64    { return p.version }

// Details devuelve (animal_name, animal_type, rescue_date, issued_by).
func (p Passport) Details() (string, string, int64, Address) {
	return p.animalName, p.animalType, p.rescueDate, p.issuedBy
}

// Verify chequea completitud de campos. No es una verificación criptográfica
// ni de cadena de ownership.
func (p Passport) Verify() bool {
	return p.animalName != "" && p.animalType != "" && p.rescueDate > 0
}

// WithVersion devuelve una copia con otra versión (uso de Holdings).
func (p Passport) WithVersion(v uint64) Passport {
	p.version = v
	return p
}

// CheckStorable rechaza texto con U+0000: es UTF-8 válido pero Postgres TEXT no lo
// acepta. Todos los adapters de Holdings lo aplican para responder igual.
func CheckStorable(p Passport, holders ...Address) error {
	fields := []string{p.animalName, p.animalType, string(p.issuedBy)}
	for _, h := range holders {
		fields = append(fields, string(h))
	}
	for _, f := range fields {
		if strings.ContainsRune(f, 0) {
			return ErrInvalidInput
		}
	}
	return nil
}
