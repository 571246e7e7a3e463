package model

// AdministrativeGender is the gender of a person for administrative purposes.
type AdministrativeGender string

const (
	GenderMale    AdministrativeGender = "male"
	GenderFemale  AdministrativeGender = "female"
	GenderOther   AdministrativeGender = "other"
	GenderUnknown AdministrativeGender = "unknown"
)

// ObservationStatus is the status of an observation result.
type ObservationStatus string

const (
	ObservationRegistered     ObservationStatus = "registered"
	ObservationPreliminary    ObservationStatus = "preliminary"
	ObservationFinal          ObservationStatus = "final"
	ObservationAmended        ObservationStatus = "amended"
	ObservationCorrected      ObservationStatus = "corrected"
	ObservationCancelled      ObservationStatus = "cancelled"
	ObservationEnteredInError ObservationStatus = "entered-in-error"
	ObservationUnknown        ObservationStatus = "unknown"
)

// TaskStatus is the current status of a task.
type TaskStatus string

const (
	TaskDraft          TaskStatus = "draft"
	TaskRequested      TaskStatus = "requested"
	TaskReceived       TaskStatus = "received"
	TaskAccepted       TaskStatus = "accepted"
	TaskRejected       TaskStatus = "rejected"
	TaskReady          TaskStatus = "ready"
	TaskCancelled      TaskStatus = "cancelled"
	TaskInProgress     TaskStatus = "in-progress"
	TaskOnHold         TaskStatus = "on-hold"
	TaskFailed         TaskStatus = "failed"
	TaskCompleted      TaskStatus = "completed"
	TaskEnteredInError TaskStatus = "entered-in-error"
)

// TaskIntent distinguishes proposals, plans and orders.
type TaskIntent string

const (
	IntentUnknown       TaskIntent = "unknown"
	IntentProposal      TaskIntent = "proposal"
	IntentPlan          TaskIntent = "plan"
	IntentOrder         TaskIntent = "order"
	IntentOriginalOrder TaskIntent = "original-order"
	IntentReflexOrder   TaskIntent = "reflex-order"
	IntentFillerOrder   TaskIntent = "filler-order"
	IntentInstanceOrder TaskIntent = "instance-order"
	IntentOption        TaskIntent = "option"
)

// RequestPriority is how quickly a request should be addressed.
type RequestPriority string

const (
	PriorityRoutine RequestPriority = "routine"
	PriorityUrgent  RequestPriority = "urgent"
	PriorityASAP    RequestPriority = "asap"
	PriorityStat    RequestPriority = "stat"
)

type IdentifierUse string

const (
	IdentifierUsual     IdentifierUse = "usual"
	IdentifierOfficial  IdentifierUse = "official"
	IdentifierTemp      IdentifierUse = "temp"
	IdentifierSecondary IdentifierUse = "secondary"
	IdentifierOld       IdentifierUse = "old"
)

type NameUse string

const (
	NameUsual     NameUse = "usual"
	NameOfficial  NameUse = "official"
	NameTemp      NameUse = "temp"
	NameNickname  NameUse = "nickname"
	NameAnonymous NameUse = "anonymous"
	NameOld       NameUse = "old"
	NameMaiden    NameUse = "maiden"
)

type AddressUse string

const (
	AddressHome    AddressUse = "home"
	AddressWork    AddressUse = "work"
	AddressTemp    AddressUse = "temp"
	AddressOld     AddressUse = "old"
	AddressBilling AddressUse = "billing"
)

type AddressType string

const (
	AddressPostal   AddressType = "postal"
	AddressPhysical AddressType = "physical"
	AddressBoth     AddressType = "both"
)

type ContactPointSystem string

const (
	ContactPhone ContactPointSystem = "phone"
	ContactFax   ContactPointSystem = "fax"
	ContactEmail ContactPointSystem = "email"
	ContactPager ContactPointSystem = "pager"
	ContactURL   ContactPointSystem = "url"
	ContactSMS   ContactPointSystem = "sms"
	ContactOther ContactPointSystem = "other"
)

type ContactPointUse string

const (
	ContactHome   ContactPointUse = "home"
	ContactWork   ContactPointUse = "work"
	ContactTemp   ContactPointUse = "temp"
	ContactOld    ContactPointUse = "old"
	ContactMobile ContactPointUse = "mobile"
)

// QuantityComparator qualifies how a quantity value is to be understood.
type QuantityComparator string

const (
	ComparatorLess           QuantityComparator = "<"
	ComparatorLessOrEqual    QuantityComparator = "<="
	ComparatorGreaterOrEqual QuantityComparator = ">="
	ComparatorGreater        QuantityComparator = ">"
)
