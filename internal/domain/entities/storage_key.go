package entities

// StorageKey names one persisted collection in the key/value store.
//
// The set is closed. Jobs, employees, time entries and pay periods are
// reserved for entities that do not exist yet.

type StorageKey string

const (
	StorageKeyClients   StorageKey = "clients"
	StorageKeyEstimates StorageKey = "estimates"
	StorageKeyPhotos    StorageKey = "photos"

	StorageKeyJobs        StorageKey = "jobs"
	StorageKeyEmployees   StorageKey = "employees"
	StorageKeyTimeEntries StorageKey = "timeEntries"
	StorageKeyPayPeriods  StorageKey = "payPeriods"
)

// StorageKeys lists every known key, active ones first.
var StorageKeys = []StorageKey{
	StorageKeyClients,
	StorageKeyEstimates,
	StorageKeyPhotos,
	StorageKeyJobs,
	StorageKeyEmployees,
	StorageKeyTimeEntries,
	StorageKeyPayPeriods,
}

func (k StorageKey) IsValid() bool {
	for _, known := range StorageKeys {
		if k == known {
			return true
		}
	}
	return false
}

func (k StorageKey) String() string { return string(k) }
