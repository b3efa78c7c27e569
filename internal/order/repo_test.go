package order

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func stage(t *testing.T, d bson.D, name string) bson.D {
	t.Helper()
	if len(d) != 1 || d[0].Key != name {
		t.Fatalf("expected single %s stage, got %v", name, d)
	}
	v, ok := d[0].Value.(bson.D)
	if !ok {
		t.Fatalf("%s stage value is %T, want bson.D", name, d[0].Value)
	}
	return v
}

func TestCustomerOrdersPipelineStages(t *testing.T) {
	p := customerOrdersPipeline("a@x.com")
	if len(p) != 6 {
		t.Fatalf("pipeline has %d stages, want 6", len(p))
	}

	match := stage(t, p[0], "$match")
	if got := match.Map()["customer.email"]; got != "a@x.com" {
		t.Fatalf("match filters on %v, want a@x.com", got)
	}

	coerce := stage(t, p[1], "$addFields")
	conv, ok := coerce.Map()["productId"].(bson.D)
	if !ok || conv.Map()["$toObjectId"] != "$productId" {
		t.Fatalf("productId coercion stage wrong: %v", coerce)
	}

	lookup := stage(t, p[2], "$lookup").Map()
	if lookup["from"] != "products" || lookup["localField"] != "productId" ||
		lookup["foreignField"] != "_id" || lookup["as"] != "products" {
		t.Fatalf("lookup stage wrong: %v", lookup)
	}

	unwind := stage(t, p[3], "$unwind").Map()
	if unwind["path"] != "$products" {
		t.Fatalf("unwind path %v, want $products", unwind["path"])
	}
	if unwind["preserveNullAndEmptyArrays"] != true {
		t.Fatal("unwind must keep orders whose product lookup found nothing")
	}

	promote := stage(t, p[4], "$addFields").Map()
	for field, src := range map[string]string{
		"name":     "$products.productName",
		"image":    "$products.image",
		"category": "$products.category",
	} {
		if promote[field] != src {
			t.Fatalf("promotion of %s = %v, want %s", field, promote[field], src)
		}
	}

	project := stage(t, p[5], "$project").Map()
	if project["products"] != 0 {
		t.Fatal("final stage must drop the nested products array")
	}
}
