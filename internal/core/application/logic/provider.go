package logic

// Provider builds logic units over a scope. It is stateless and safe for
// concurrent use; units themselves live and die with the scope they are
// built over.
type Provider struct{}

// NewProvider creates a logic Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// CarLogic builds a CarLogic over the given scope.
func (p *Provider) CarLogic(scope CarScope) CarLogic {
	return NewCarLogic(scope)
}

// OrderLogic builds an OrderLogic over the given scope and the CarLogic it
// composes with. The caller constructs the CarLogic first; the dependency is
// deliberately a parameter, not something OrderLogic resolves on its own.
func (p *Provider) OrderLogic(scope OrderScope, cars CarLogic) OrderLogic {
	return NewOrderLogic(scope, cars)
}
