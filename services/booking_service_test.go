package services

import (
	"context"
	"strings"
	"testing"

	"github.com/MuhammadAsgharramzan/MechaniXpress/models"
	"github.com/google/uuid"
)

func TestCreateBookingSnapshotsCost(t *testing.T) {
	store, bookings, _ := newTestServices(t)
	ctx := context.Background()

	customer := createCustomer(t, store, "ali@example.com", "+923001234501")
	vehicle := createVehicle(t, store, customer.ID, models.CategoryCar)
	svc := createCatalogService(t, store, models.CategoryCar, 3500, 500)

	booking, err := bookings.CreateBooking(ctx, customer.ID, newBookingInput(vehicle.ID, svc.ID))
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.TotalCost != 4000 {
		t.Fatalf("TotalCost = %v, want 4000", booking.TotalCost)
	}
	if booking.Status != models.StatusPending {
		t.Fatalf("Status = %q, want PENDING", booking.Status)
	}

	// A later catalog price change must not touch existing bookings.
	svc.BasePrice = 9000
	if err := store.Services.Save(ctx, svc); err != nil {
		t.Fatalf("update service price: %v", err)
	}
	reloaded, err := store.Bookings.GetByID(ctx, booking.ID)
	if err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if reloaded.TotalCost != 4000 {
		t.Fatalf("TotalCost after price change = %v, want 4000", reloaded.TotalCost)
	}
}

func TestCreateBookingRejectsForeignVehicle(t *testing.T) {
	store, bookings, _ := newTestServices(t)
	ctx := context.Background()

	owner := createCustomer(t, store, "owner@example.com", "+923001234502")
	other := createCustomer(t, store, "other@example.com", "+923001234503")
	vehicle := createVehicle(t, store, owner.ID, models.CategoryCar)
	svc := createCatalogService(t, store, models.CategoryCar, 3500, 500)

	_, err := bookings.CreateBooking(ctx, other.ID, newBookingInput(vehicle.ID, svc.ID))
	if kind := kindOf(t, err); kind != KindAuthorization {
		t.Fatalf("error kind = %v, want KindAuthorization", kind)
	}
}

func TestCreateBookingUnknownService(t *testing.T) {
	store, bookings, _ := newTestServices(t)
	ctx := context.Background()

	customer := createCustomer(t, store, "ali@example.com", "+923001234504")
	vehicle := createVehicle(t, store, customer.ID, models.CategoryCar)

	_, err := bookings.CreateBooking(ctx, customer.ID, newBookingInput(vehicle.ID, uuid.New()))
	if kind := kindOf(t, err); kind != KindNotFound {
		t.Fatalf("error kind = %v, want KindNotFound", kind)
	}
}

func TestBookingNumbersAreUniqueAndPrefixed(t *testing.T) {
	store, bookings, _ := newTestServices(t)
	ctx := context.Background()

	customer := createCustomer(t, store, "ali@example.com", "+923001234505")
	vehicle := createVehicle(t, store, customer.ID, models.CategoryCar)
	svc := createCatalogService(t, store, models.CategoryCar, 3500, 500)

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		b, err := bookings.CreateBooking(ctx, customer.ID, newBookingInput(vehicle.ID, svc.ID))
		if err != nil {
			t.Fatalf("CreateBooking #%d: %v", i, err)
		}
		if !strings.HasPrefix(b.BookingNumber, "MX-") {
			t.Fatalf("BookingNumber = %q, want MX- prefix", b.BookingNumber)
		}
		if seen[b.BookingNumber] {
			t.Fatalf("duplicate booking number %q", b.BookingNumber)
		}
		seen[b.BookingNumber] = true
	}
}

func TestListAvailableJobsFiltersByVehicleCategory(t *testing.T) {
	store, bookings, _ := newTestServices(t)
	ctx := context.Background()

	customer := createCustomer(t, store, "ali@example.com", "+923001234506")
	car := createVehicle(t, store, customer.ID, models.CategoryCar)
	bike := createVehicle(t, store, customer.ID, models.CategoryBike)
	carSvc := createCatalogService(t, store, models.CategoryCar, 3500, 500)
	bikeSvc := createCatalogService(t, store, models.CategoryBike, 800, 200)

	first, err := bookings.CreateBooking(ctx, customer.ID, newBookingInput(car.ID, carSvc.ID))
	if err != nil {
		t.Fatalf("create car booking: %v", err)
	}
	if _, err := bookings.CreateBooking(ctx, customer.ID, newBookingInput(bike.ID, bikeSvc.ID)); err != nil {
		t.Fatalf("create bike booking: %v", err)
	}
	second, err := bookings.CreateBooking(ctx, customer.ID, newBookingInput(car.ID, carSvc.ID))
	if err != nil {
		t.Fatalf("create second car booking: %v", err)
	}

	mechUser, _ := createMechanic(t, store, "mech@example.com", "+923001234507",
		models.CategoryList{models.CategoryCar})

	jobs, err := bookings.ListAvailableJobs(ctx, mechUser.ID)
	if err != nil {
		t.Fatalf("ListAvailableJobs: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2 (bike booking must be invisible)", len(jobs))
	}
	for _, j := range jobs {
		if j.Vehicle == nil || j.Vehicle.Category != models.CategoryCar {
			t.Fatalf("mechanic offered a non-CAR job: %+v", j.Vehicle)
		}
	}
	// Oldest booking is offered first.
	if jobs[0].ID != first.ID || jobs[1].ID != second.ID {
		t.Fatalf("jobs not ordered oldest first: got %s then %s", jobs[0].BookingNumber, jobs[1].BookingNumber)
	}
}

func TestListAvailableJobsIncludesDistanceWhenLocated(t *testing.T) {
	store, bookings, _ := newTestServices(t)
	ctx := context.Background()

	customer := createCustomer(t, store, "ali@example.com", "+923001234508")
	vehicle := createVehicle(t, store, customer.ID, models.CategoryCar)
	svc := createCatalogService(t, store, models.CategoryCar, 3500, 500)
	if _, err := bookings.CreateBooking(ctx, customer.ID, newBookingInput(vehicle.ID, svc.ID)); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	mechUser, profile := createMechanic(t, store, "mech@example.com", "+923001234509",
		models.CategoryList{models.CategoryCar})
	lat, lng := 31.50, 74.30
	profile.Latitude = &lat
	profile.Longitude = &lng
	if err := store.Mechanics.Save(ctx, profile); err != nil {
		t.Fatalf("save profile coords: %v", err)
	}

	jobs, err := bookings.ListAvailableJobs(ctx, mechUser.ID)
	if err != nil {
		t.Fatalf("ListAvailableJobs: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	if jobs[0].Distance == nil {
		t.Fatal("expected a distance estimate for a located mechanic")
	}
	if jobs[0].Distance.DistanceValue <= 0 {
		t.Fatalf("DistanceValue = %v, want > 0", jobs[0].Distance.DistanceValue)
	}
}

func TestListAvailableJobsRequiresMechanicProfile(t *testing.T) {
	store, bookings, _ := newTestServices(t)

	customer := createCustomer(t, store, "ali@example.com", "+923001234510")
	_, err := bookings.ListAvailableJobs(context.Background(), customer.ID)
	if kind := kindOf(t, err); kind != KindValidation {
		t.Fatalf("error kind = %v, want KindValidation", kind)
	}
}

func TestAcceptJobClaimsExactlyOnce(t *testing.T) {
	store, bookings, _ := newTestServices(t)
	ctx := context.Background()

	customer := createCustomer(t, store, "ali@example.com", "+923001234511")
	vehicle := createVehicle(t, store, customer.ID, models.CategoryCar)
	svc := createCatalogService(t, store, models.CategoryCar, 3500, 500)
	booking, err := bookings.CreateBooking(ctx, customer.ID, newBookingInput(vehicle.ID, svc.ID))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	mech1, profile1 := createMechanic(t, store, "m1@example.com", "+923001234512",
		models.CategoryList{models.CategoryCar})
	mech2, _ := createMechanic(t, store, "m2@example.com", "+923001234513",
		models.CategoryList{models.CategoryCar})

	claimed, err := bookings.AcceptJob(ctx, mech1.ID, booking.ID)
	if err != nil {
		t.Fatalf("first AcceptJob: %v", err)
	}
	if claimed.Status != models.StatusConfirmed {
		t.Fatalf("Status = %q, want CONFIRMED", claimed.Status)
	}
	if claimed.MechanicID == nil || *claimed.MechanicID != profile1.ID {
		t.Fatalf("MechanicID = %v, want %s", claimed.MechanicID, profile1.ID)
	}
	if claimed.AcceptedAt == nil {
		t.Fatal("AcceptedAt not stamped")
	}

	_, err = bookings.AcceptJob(ctx, mech2.ID, booking.ID)
	if kind := kindOf(t, err); kind != KindConflict {
		t.Fatalf("second accept error kind = %v, want KindConflict", kind)
	}

	// The loser must not have overwritten the assignment.
	reloaded, err := store.Bookings.GetByID(ctx, booking.ID)
	if err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if reloaded.MechanicID == nil || *reloaded.MechanicID != profile1.ID {
		t.Fatalf("assignment changed after losing claim: %v", reloaded.MechanicID)
	}
}

func TestAcceptJobUnknownBooking(t *testing.T) {
	store, bookings, _ := newTestServices(t)

	mech, _ := createMechanic(t, store, "mech@example.com", "+923001234514",
		models.CategoryList{models.CategoryCar})
	_, err := bookings.AcceptJob(context.Background(), mech.ID, uuid.New())
	if kind := kindOf(t, err); kind != KindNotFound {
		t.Fatalf("error kind = %v, want KindNotFound", kind)
	}
}

func TestUpdateJobStatusProgression(t *testing.T) {
	store, bookings, _ := newTestServices(t)
	ctx := context.Background()

	customer := createCustomer(t, store, "ali@example.com", "+923001234515")
	vehicle := createVehicle(t, store, customer.ID, models.CategoryCar)
	svc := createCatalogService(t, store, models.CategoryCar, 3500, 500)
	booking, err := bookings.CreateBooking(ctx, customer.ID, newBookingInput(vehicle.ID, svc.ID))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	mech, profile := createMechanic(t, store, "mech@example.com", "+923001234516",
		models.CategoryList{models.CategoryCar})
	if _, err := bookings.AcceptJob(ctx, mech.ID, booking.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	active, err := bookings.ListMechanicActiveJobs(ctx, mech.ID)
	if err != nil {
		t.Fatalf("ListMechanicActiveJobs: %v", err)
	}
	if len(active) != 1 || active[0].ID != booking.ID {
		t.Fatalf("active jobs = %d, want the accepted booking", len(active))
	}

	started, err := bookings.UpdateJobStatus(ctx, mech.ID, booking.ID, models.StatusInProgress)
	if err != nil {
		t.Fatalf("to IN_PROGRESS: %v", err)
	}
	if started.StartedAt == nil {
		t.Fatal("StartedAt not stamped")
	}

	done, err := bookings.UpdateJobStatus(ctx, mech.ID, booking.ID, models.StatusCompleted)
	if err != nil {
		t.Fatalf("to COMPLETED: %v", err)
	}
	if done.Status != models.StatusCompleted || done.CompletedAt == nil {
		t.Fatalf("Status = %q CompletedAt = %v, want COMPLETED with timestamp", done.Status, done.CompletedAt)
	}

	reloaded, err := store.Bookings.GetByID(ctx, booking.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != models.StatusCompleted {
		t.Fatalf("persisted Status = %q, want COMPLETED", reloaded.Status)
	}
	if reloaded.MechanicID == nil || *reloaded.MechanicID != profile.ID {
		t.Fatalf("MechanicID lost across transitions: %v", reloaded.MechanicID)
	}
}

func TestUpdateJobStatusRejectsShortcut(t *testing.T) {
	store, bookings, _ := newTestServices(t)
	ctx := context.Background()

	customer := createCustomer(t, store, "ali@example.com", "+923001234517")
	vehicle := createVehicle(t, store, customer.ID, models.CategoryCar)
	svc := createCatalogService(t, store, models.CategoryCar, 3500, 500)
	booking, err := bookings.CreateBooking(ctx, customer.ID, newBookingInput(vehicle.ID, svc.ID))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	mech, _ := createMechanic(t, store, "mech@example.com", "+923001234518",
		models.CategoryList{models.CategoryCar})
	if _, err := bookings.AcceptJob(ctx, mech.ID, booking.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	// CONFIRMED -> COMPLETED skips IN_PROGRESS.
	_, err = bookings.UpdateJobStatus(ctx, mech.ID, booking.ID, models.StatusCompleted)
	if kind := kindOf(t, err); kind != KindConflict {
		t.Fatalf("error kind = %v, want KindConflict", kind)
	}

	reloaded, err := store.Bookings.GetByID(ctx, booking.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != models.StatusConfirmed {
		t.Fatalf("Status = %q after rejected shortcut, want CONFIRMED", reloaded.Status)
	}
}

func TestUpdateJobStatusRejectsNonAssignee(t *testing.T) {
	store, bookings, _ := newTestServices(t)
	ctx := context.Background()

	customer := createCustomer(t, store, "ali@example.com", "+923001234519")
	vehicle := createVehicle(t, store, customer.ID, models.CategoryCar)
	svc := createCatalogService(t, store, models.CategoryCar, 3500, 500)
	booking, err := bookings.CreateBooking(ctx, customer.ID, newBookingInput(vehicle.ID, svc.ID))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	assignee, _ := createMechanic(t, store, "m1@example.com", "+923001234520",
		models.CategoryList{models.CategoryCar})
	stranger, _ := createMechanic(t, store, "m2@example.com", "+923001234521",
		models.CategoryList{models.CategoryCar})
	if _, err := bookings.AcceptJob(ctx, assignee.ID, booking.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	_, err = bookings.UpdateJobStatus(ctx, stranger.ID, booking.ID, models.StatusInProgress)
	if kind := kindOf(t, err); kind != KindAuthorization {
		t.Fatalf("error kind = %v, want KindAuthorization", kind)
	}
}

func TestUpdateJobStatusRejectsInvalidTarget(t *testing.T) {
	store, bookings, _ := newTestServices(t)

	mech, _ := createMechanic(t, store, "mech@example.com", "+923001234522",
		models.CategoryList{models.CategoryCar})
	_, err := bookings.UpdateJobStatus(context.Background(), mech.ID, uuid.New(), models.StatusCancelled)
	if kind := kindOf(t, err); kind != KindValidation {
		t.Fatalf("error kind = %v, want KindValidation", kind)
	}
}

func TestCancelBooking(t *testing.T) {
	store, bookings, _ := newTestServices(t)
	ctx := context.Background()

	customer := createCustomer(t, store, "ali@example.com", "+923001234523")
	other := createCustomer(t, store, "other@example.com", "+923001234524")
	vehicle := createVehicle(t, store, customer.ID, models.CategoryCar)
	svc := createCatalogService(t, store, models.CategoryCar, 3500, 500)

	booking, err := bookings.CreateBooking(ctx, customer.ID, newBookingInput(vehicle.ID, svc.ID))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if _, err := bookings.CancelBooking(ctx, other.ID, booking.ID); err == nil {
		t.Fatal("expected non-owner cancel to fail")
	} else if kind := kindOf(t, err); kind != KindAuthorization {
		t.Fatalf("non-owner error kind = %v, want KindAuthorization", kind)
	}

	cancelled, err := bookings.CancelBooking(ctx, customer.ID, booking.ID)
	if err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if cancelled.Status != models.StatusCancelled || cancelled.CancelledAt == nil {
		t.Fatalf("Status = %q CancelledAt = %v, want CANCELLED with timestamp", cancelled.Status, cancelled.CancelledAt)
	}

	// A cancelled booking can no longer be claimed.
	mech, _ := createMechanic(t, store, "mech@example.com", "+923001234525",
		models.CategoryList{models.CategoryCar})
	_, err = bookings.AcceptJob(ctx, mech.ID, booking.ID)
	if kind := kindOf(t, err); kind != KindConflict {
		t.Fatalf("accept-after-cancel error kind = %v, want KindConflict", kind)
	}
}

func TestCancelBookingAfterAcceptConflicts(t *testing.T) {
	store, bookings, _ := newTestServices(t)
	ctx := context.Background()

	customer := createCustomer(t, store, "ali@example.com", "+923001234526")
	vehicle := createVehicle(t, store, customer.ID, models.CategoryCar)
	svc := createCatalogService(t, store, models.CategoryCar, 3500, 500)
	booking, err := bookings.CreateBooking(ctx, customer.ID, newBookingInput(vehicle.ID, svc.ID))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	mech, _ := createMechanic(t, store, "mech@example.com", "+923001234527",
		models.CategoryList{models.CategoryCar})
	if _, err := bookings.AcceptJob(ctx, mech.ID, booking.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	_, err = bookings.CancelBooking(ctx, customer.ID, booking.ID)
	if kind := kindOf(t, err); kind != KindConflict {
		t.Fatalf("error kind = %v, want KindConflict", kind)
	}
}

func TestGetBookingDetailsAccess(t *testing.T) {
	store, bookings, _ := newTestServices(t)
	ctx := context.Background()

	customer := createCustomer(t, store, "ali@example.com", "+923001234528")
	stranger := createCustomer(t, store, "other@example.com", "+923001234529")
	admin := &models.User{
		Email:    "admin@example.com",
		Phone:    "+923001234530",
		Password: "password123",
		Name:     "Test Admin",
		Role:     models.RoleAdmin,
	}
	if err := store.Users.Create(ctx, admin); err != nil {
		t.Fatalf("create admin: %v", err)
	}

	vehicle := createVehicle(t, store, customer.ID, models.CategoryCar)
	svc := createCatalogService(t, store, models.CategoryCar, 3500, 500)
	booking, err := bookings.CreateBooking(ctx, customer.ID, newBookingInput(vehicle.ID, svc.ID))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if _, err := bookings.GetBookingDetails(ctx, customer.ID, models.RoleCustomer, booking.ID); err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if _, err := bookings.GetBookingDetails(ctx, admin.ID, models.RoleAdmin, booking.ID); err != nil {
		t.Fatalf("admin read: %v", err)
	}
	_, err = bookings.GetBookingDetails(ctx, stranger.ID, models.RoleCustomer, booking.ID)
	if kind := kindOf(t, err); kind != KindAuthorization {
		t.Fatalf("stranger read error kind = %v, want KindAuthorization", kind)
	}

	mech, _ := createMechanic(t, store, "mech@example.com", "+923001234531",
		models.CategoryList{models.CategoryCar})
	_, err = bookings.GetBookingDetails(ctx, mech.ID, models.RoleMechanic, booking.ID)
	if kind := kindOf(t, err); kind != KindAuthorization {
		t.Fatalf("unassigned mechanic error kind = %v, want KindAuthorization", kind)
	}
	if _, err := bookings.AcceptJob(ctx, mech.ID, booking.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := bookings.GetBookingDetails(ctx, mech.ID, models.RoleMechanic, booking.ID); err != nil {
		t.Fatalf("assigned mechanic read: %v", err)
	}
}
