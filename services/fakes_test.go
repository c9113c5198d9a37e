package services_test

import (
	"context"
	"sort"

	"github.com/M1nhDuke/PB-075/models"
	"github.com/M1nhDuke/PB-075/repositories"
)

// Фейковые репозитории в памяти для тестов сервисного слоя.

type fakePlayerRepo struct {
	players map[int]models.Player
	nextID  int
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[int]models.Player), nextID: 1}
}

func (r *fakePlayerRepo) Create(_ context.Context, player *models.Player) error {
	for _, existing := range r.players {
		if existing.JerseyNumber == player.JerseyNumber {
			return repositories.ErrPlayerNumberConflict
		}
	}
	player.ID = r.nextID
	r.nextID++
	r.players[player.ID] = *player
	return nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, id int) (*models.Player, error) {
	player, ok := r.players[id]
	if !ok {
		return nil, repositories.ErrPlayerNotFound
	}
	return &player, nil
}

func (r *fakePlayerRepo) List(_ context.Context, skip, limit int) ([]models.Player, error) {
	ids := make([]int, 0, len(r.players))
	for id := range r.players {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	players := make([]models.Player, 0)
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(players) >= limit {
			break
		}
		players = append(players, r.players[id])
	}
	return players, nil
}

func (r *fakePlayerRepo) Update(_ context.Context, player *models.Player) error {
	if _, ok := r.players[player.ID]; !ok {
		return repositories.ErrPlayerNotFound
	}
	for id, existing := range r.players {
		if id != player.ID && existing.JerseyNumber == player.JerseyNumber {
			return repositories.ErrPlayerNumberConflict
		}
	}
	r.players[player.ID] = *player
	return nil
}

func (r *fakePlayerRepo) ExistsByID(_ context.Context, _ repositories.SQLExecutor, id int) (bool, error) {
	_, ok := r.players[id]
	return ok, nil
}

type fakeMatchRepo struct {
	matches map[int]models.Match
	nextID  int
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[int]models.Match), nextID: 1}
}

func (r *fakeMatchRepo) Create(_ context.Context, match *models.Match) error {
	match.ID = r.nextID
	r.nextID++
	r.matches[match.ID] = *match
	return nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, id int) (*models.Match, error) {
	match, ok := r.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	return &match, nil
}

func (r *fakeMatchRepo) ListIncomplete(_ context.Context) ([]*models.Match, error) {
	// Намеренно недетерминированный порядок (итерация по map):
	// сортировка — обязанность сервиса.
	matches := make([]*models.Match, 0)
	for id := range r.matches {
		match := r.matches[id]
		if !match.IsCompleted {
			matches = append(matches, &match)
		}
	}
	return matches, nil
}

func (r *fakeMatchRepo) UpdateResult(_ context.Context, match *models.Match) error {
	if _, ok := r.matches[match.ID]; !ok {
		return repositories.ErrMatchNotFound
	}
	r.matches[match.ID] = *match
	return nil
}

type fakeSquadRepo struct {
	playerRepo *fakePlayerRepo

	plans      map[int]models.SquadPlan // по id плана
	roles      map[int]models.SquadRole // по id роли
	nextPlanID int
	nextRoleID int
}

func newFakeSquadRepo(playerRepo *fakePlayerRepo) *fakeSquadRepo {
	return &fakeSquadRepo{
		playerRepo: playerRepo,
		plans:      make(map[int]models.SquadPlan),
		roles:      make(map[int]models.SquadRole),
		nextPlanID: 1,
		nextRoleID: 1,
	}
}

func (r *fakeSquadRepo) snapshot() *fakeSquadRepo {
	clone := newFakeSquadRepo(r.playerRepo)
	clone.nextPlanID = r.nextPlanID
	clone.nextRoleID = r.nextRoleID
	for id, plan := range r.plans {
		clone.plans[id] = plan
	}
	for id, role := range r.roles {
		clone.roles[id] = role
	}
	return clone
}

func (r *fakeSquadRepo) restore(snapshot *fakeSquadRepo) {
	r.plans = snapshot.plans
	r.roles = snapshot.roles
	r.nextPlanID = snapshot.nextPlanID
	r.nextRoleID = snapshot.nextRoleID
}

func (r *fakeSquadRepo) GetPlanByMatchID(_ context.Context, _ repositories.SQLExecutor, matchID int) (*models.SquadPlan, error) {
	for id := range r.plans {
		if r.plans[id].MatchID == matchID {
			plan := r.plans[id]
			return &plan, nil
		}
	}
	return nil, repositories.ErrSquadPlanNotFound
}

func (r *fakeSquadRepo) CreatePlan(_ context.Context, _ repositories.SQLExecutor, plan *models.SquadPlan) error {
	plan.ID = r.nextPlanID
	r.nextPlanID++
	r.plans[plan.ID] = *plan
	return nil
}

func (r *fakeSquadRepo) UpdatePlan(_ context.Context, _ repositories.SQLExecutor, plan *models.SquadPlan) error {
	if _, ok := r.plans[plan.ID]; !ok {
		return repositories.ErrSquadPlanNotFound
	}
	r.plans[plan.ID] = *plan
	return nil
}

func (r *fakeSquadRepo) DeleteRolesByPlanID(_ context.Context, _ repositories.SQLExecutor, planID int) error {
	for id, role := range r.roles {
		if role.SquadPlanID == planID {
			delete(r.roles, id)
		}
	}
	return nil
}

func (r *fakeSquadRepo) CreateRole(_ context.Context, _ repositories.SQLExecutor, role *models.SquadRole) error {
	role.ID = r.nextRoleID
	r.nextRoleID++
	r.roles[role.ID] = *role
	return nil
}

func (r *fakeSquadRepo) ListRolesWithPlayers(_ context.Context, planID int) ([]models.SquadRole, error) {
	ids := make([]int, 0)
	for id, role := range r.roles {
		if role.SquadPlanID == planID {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	roles := make([]models.SquadRole, 0, len(ids))
	for _, id := range ids {
		role := r.roles[id]
		if player, ok := r.playerRepo.players[role.PlayerID]; ok {
			p := player
			role.Player = &p
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// fakeTxManager имитирует атомарность: при ошибке возвращает состояние
// фейкового репозитория к снимку, сделанному перед транзакцией.
type fakeTxManager struct {
	squadRepo *fakeSquadRepo
}

func (m *fakeTxManager) WithinTx(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	snapshot := m.squadRepo.snapshot()
	if err := fn(nil); err != nil {
		m.squadRepo.restore(snapshot)
		return err
	}
	return nil
}

type fakeTrainingRepo struct {
	plans  map[int]models.TrainingPlan // по match_id
	nextID int
}

func newFakeTrainingRepo() *fakeTrainingRepo {
	return &fakeTrainingRepo{plans: make(map[int]models.TrainingPlan), nextID: 1}
}

func (r *fakeTrainingRepo) GetByMatchID(_ context.Context, matchID int) (*models.TrainingPlan, error) {
	plan, ok := r.plans[matchID]
	if !ok {
		return nil, repositories.ErrTrainingPlanNotFound
	}
	return &plan, nil
}

func (r *fakeTrainingRepo) Upsert(_ context.Context, plan *models.TrainingPlan) error {
	if existing, ok := r.plans[plan.MatchID]; ok {
		plan.ID = existing.ID
	} else {
		plan.ID = r.nextID
		r.nextID++
	}
	r.plans[plan.MatchID] = *plan
	return nil
}

type fakeStatRepo struct {
	stats  map[int]models.MatchStat // по match_id
	nextID int
}

func newFakeStatRepo() *fakeStatRepo {
	return &fakeStatRepo{stats: make(map[int]models.MatchStat), nextID: 1}
}

func (r *fakeStatRepo) Create(_ context.Context, stat *models.MatchStat) error {
	if _, ok := r.stats[stat.MatchID]; ok {
		return repositories.ErrMatchStatConflict
	}
	stat.ID = r.nextID
	r.nextID++
	r.stats[stat.MatchID] = *stat
	return nil
}

func (r *fakeStatRepo) GetByMatchID(_ context.Context, matchID int) (*models.MatchStat, error) {
	stat, ok := r.stats[matchID]
	if !ok {
		return nil, repositories.ErrMatchStatNotFound
	}
	return &stat, nil
}
