package catalog

import "github.com/iliyamo/table-reservation/internal/model"

// Menu returns the restaurant menu grouped by category.  The returned
// slices are fresh copies and may be modified by the caller.
func Menu() []model.MenuCategory {
    out := make([]model.MenuCategory, 0, len(menu))
    for _, c := range menu {
        c.Items = append([]model.MenuItem(nil), c.Items...)
        out = append(out, c)
    }
    return out
}

// Find looks up a menu item by its exact name.
func Find(name string) (model.MenuItem, bool) {
    for _, c := range menu {
        for _, it := range c.Items {
            if it.Name == name {
                return it, true
            }
        }
    }
    return model.MenuItem{}, false
}

var menu = []model.MenuCategory{
    {Key: "entradas", Title: "Entradas", Items: []model.MenuItem{
        {Name: "Ceviche Clásico", Description: "Pescado del día, limón, ají limo, cebolla roja, culantro, camote, choclo", Price: "S/ 38", Image: "https://images.unsplash.com/photo-1761314036959-42fa6eac59db?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxwZXJ1dmlhbiUyMGNldmljaGUlMjBmaXNoJTIwbGltZXxlbnwxfHx8fDE3NjI0OTQxNjB8MA&ixlib=rb-4.1.0&q=80&w=1080", Spicy: true},
        {Name: "Causa Limeña", Description: "Papa amarilla, ají amarillo, limón, palta, relleno de pollo/atún, mayonesa, aceituna, huevo", Price: "S/ 32", Image: "https://via.placeholder.com/400x300/FFD700/000000?text=Causa+Limena"},
        {Name: "Papa a la Huancaína", Description: "Papa sancochada, salsa de queso fresco con ají amarillo, leche/galleta, aceituna, huevo", Price: "S/ 28", Image: "https://via.placeholder.com/400x300/FFA500/000000?text=Papa+Huancaina", Spicy: true, Vegetarian: true},
        {Name: "Ocopa Arequipeña", Description: "Papa, salsa de huacatay con maní y queso, leche/galleta, huevo, aceituna", Price: "S/ 30", Image: "https://via.placeholder.com/400x300/90EE90/000000?text=Ocopa", Vegetarian: true},
        {Name: "Choritos a la Chalaca", Description: "Choros, cebolla, tomate, choclo, ají limo, limón, culantro", Price: "S/ 35", Image: "https://via.placeholder.com/400x300/87CEEB/000000?text=Choritos+Chalaca"},
        {Name: "Tiradito al Ají Amarillo", Description: "Láminas de pescado, crema de ají amarillo, limón, aceite, sal", Price: "S/ 40", Image: "https://via.placeholder.com/400x300/FFB6C1/000000?text=Tiradito", Spicy: true},
        {Name: "Anticuchos de Corazón", Description: "Corazón de res, adobo de ají panca y especias, papa, choclo, salsa de anticucho", Price: "S/ 36", Image: "https://images.unsplash.com/photo-1761315414620-7f0f3ebdd866?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxhbnRpY3VjaG9zJTIwYmVlZiUyMGhlYXJ0JTIwc2tld2Vyc3xlbnwxfHx8fDE3NjI0OTQxNjN8MA&ixlib=rb-4.1.0&q=80&w=1080", Spicy: true},
        {Name: "Tamal Criollo", Description: "Masa de maíz, aderezo rojo, cerdo/pollo, maní, aceituna, huevo", Price: "S/ 25", Image: "https://via.placeholder.com/400x300/F5DEB3/000000?text=Tamal+Criollo"},
        {Name: "Solterito Arequipeño", Description: "Queso fresco, habas, choclo, tomate, cebolla, aceituna, vinagreta", Price: "S/ 26", Image: "https://images.unsplash.com/photo-1708397469515-0ef890e0095f?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxzb2x0ZXJpdG8lMjBzYWxhZCUyMGNoZWVzZSUyMGJlYW5zfGVufDF8fHx8MTc2MjQ5NDE2NHww&ixlib=rb-4.1.0&q=80&w=1080", Vegetarian: true},
        {Name: "Chicharrón de Calamar", Description: "Aros de calamar, harina/chuño, limón, salsa tártara", Price: "S/ 34", Image: "https://images.unsplash.com/photo-1734771219838-61863137b117?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxmcmllZCUyMGNhbGFtYXJpJTIwY3Jpc3B5JTIwZ29sZGVufGVufDF8fHx8MTc2MjQ5NDE2NXww&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Leche de Tigre", Description: "Extracto de ceviche, jugo de limón, ají, cebolla, culantro, cancha", Price: "S/ 27", Image: "https://via.placeholder.com/400x300/ADD8E6/000000?text=Leche+de+Tigre", Spicy: true},
    }},
    {Key: "principales", Title: "Platos principales", Items: []model.MenuItem{
        {Name: "Lomo Saltado", Description: "Lomo de res, cebolla, tomate, sillao, papas fritas, arroz", Price: "S/ 52", Image: "https://via.placeholder.com/400x300/8B4513/FFFFFF?text=Lomo+Saltado"},
        {Name: "Ají de Gallina", Description: "Pollo deshilachado, crema de ají amarillo, pan/leche, nuez, queso, arroz", Price: "S/ 48", Image: "https://via.placeholder.com/400x300/FFD700/000000?text=Aji+de+Gallina", Spicy: true},
        {Name: "Arroz con Pollo", Description: "Arroz, culantro licuado, pollo, cerveza negra, zanahoria, pimiento", Price: "S/ 45", Image: "https://via.placeholder.com/400x300/90EE90/000000?text=Arroz+con+Pollo"},
        {Name: "Seco de Cordero a la Norteña", Description: "Cordero, culantro, chicha de jora, loche, frijoles, arroz", Price: "S/ 65", Image: "https://via.placeholder.com/400x300/8B4513/FFFFFF?text=Seco+Cordero"},
        {Name: "Carapulcra con Sopa Seca", Description: "Guiso de papa seca con maní y cerdo; tallarín sazonado con albahaca y aderezo", Price: "S/ 58", Image: "https://via.placeholder.com/400x300/A0522D/FFFFFF?text=Carapulcra"},
        {Name: "Arroz Chaufa de Mariscos", Description: "Arroz salteado, langostinos/calamares, huevo, cebolla china, sillao, kión", Price: "S/ 55", Image: "https://via.placeholder.com/400x300/FFA500/000000?text=Chaufa+Mariscos"},
        {Name: "Tacu Tacu con Bistec", Description: "Frijol y arroz dorados, bistec de res, salsa criolla, plátano frito", Price: "S/ 50", Image: "https://via.placeholder.com/400x300/8B4513/FFFFFF?text=Tacu+Tacu"},
        {Name: "Cuy Chactado", Description: "Cuy entero crocante, harina/condimentos, papa dorada, ensalada", Price: "S/ 75", Image: "https://via.placeholder.com/400x300/CD853F/000000?text=Cuy+Chactado"},
        {Name: "Pachamanca Tres Carnes", Description: "Cerdo, pollo, res; hierbas andinas (huacatay, chincho), habas, choclo, papa, humitas", Price: "S/ 70", Image: "https://via.placeholder.com/400x300/8B4513/FFFFFF?text=Pachamanca"},
        {Name: "Pollo a la Brasa", Description: "Pollo marinado, papas fritas, ensalada, cremas", Price: "S/ 42", Image: "https://via.placeholder.com/400x300/D2691E/FFFFFF?text=Pollo+Brasa"},
        {Name: "Sudado de Pescado", Description: "Pescado, chicha de jora, tomate, cebolla, ají, culantro", Price: "S/ 48", Image: "https://via.placeholder.com/400x300/FF6347/FFFFFF?text=Sudado+Pescado"},
        {Name: "Chupe de Camarones", Description: "Camarones, leche, papa, huevo, arroz, queso, huacatay", Price: "S/ 68", Image: "https://via.placeholder.com/400x300/FF7F50/000000?text=Chupe+Camarones"},
        {Name: "Cabrito a la Norteña", Description: "Cabrito, loche, chicha de jora, aderezo rojo; frijoles y arroz", Price: "S/ 72", Image: "https://via.placeholder.com/400x300/8B4513/FFFFFF?text=Cabrito+Nortena"},
        {Name: "Adobo Arequipeño", Description: "Cerdo marinado en chicha de jora, ají panca, comino, pan, cebolla", Price: "S/ 46", Image: "https://via.placeholder.com/400x300/A52A2A/FFFFFF?text=Adobo", Spicy: true},
        {Name: "Quinotto de Hongos", Description: "Quinua, hongos andinos, caldo de verduras, cebolla, ajo, queso", Price: "S/ 44", Image: "https://via.placeholder.com/400x300/F5DEB3/000000?text=Quinotto", Vegetarian: true},
    }},
    {Key: "postres", Title: "Postres", Items: []model.MenuItem{
        {Name: "Suspiro a la Limeña", Description: "Manjar blanco, yemas, merengue al oporto", Price: "S/ 25", Image: "https://images.unsplash.com/photo-1752245055475-8b7c3b4756ac?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxtZXJpbmd1ZSUyMGNhcmFtZWwlMjBkZXNzZXJ0JTIwZ2xhc3N8ZW58MXx8fHwxNzYyNDkzNjk3fDA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Mazamorra Morada", Description: "Maíz morado, frutas secas/frescas, canela, clavo", Price: "S/ 18", Image: "https://images.unsplash.com/photo-1566901889590-85481ae4de50?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxwdXJwbGUlMjBwdWRkaW5nJTIwZnJ1aXQlMjBkZXNzZXJ0fGVufDF8fHx8MTc2MjQ5MzY5N3ww&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Arroz con Leche", Description: "Arroz, leche, azúcar, canela, cáscara de limón", Price: "S/ 20", Image: "https://images.unsplash.com/photo-1606728099646-68d5a0a4d423?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxyaWNlJTIwcHVkZGluZyUyMGNpbm5hbW9uJTIwYm93bHxlbnwxfHx8fDE3NjI0OTM2OTh8MA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Picarones", Description: "Masa de zapallo y camote, fritura, miel de chancaca", Price: "S/ 22", Image: "https://images.unsplash.com/photo-1702882238893-b42d5808a4af?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxkb251dHMlMjBob25leSUyMHN5cnVwJTIwZnJpZWR8ZW58MXx8fHwxNzYyNDkzNjk4fDA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Turrón de Doña Pepa", Description: "Barras de anís, miel de frutas, grageas", Price: "S/ 26", Image: "https://images.unsplash.com/photo-1619146034835-55dcb4787c90?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxsYXllcmVkJTIwY29va2llJTIwY2FuZHklMjBjb2xvcmZ1bHxlbnwxfHx8fDE3NjI0OTM2OTl8MA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "King Kong", Description: "Galleta gruesa, manjar blanco, dulce de piña/maní", Price: "S/ 28", Image: "https://images.unsplash.com/photo-1661416958387-00c93ada91ae?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxzYW5kd2ljaCUyMGNvb2tpZSUyMGR1bGNlJTIwbGVjaGV8ZW58MXx8fHwxNzYyNDkzNjk5fDA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Alfajores", Description: "Tapas de maicena/harina, manjar blanco, coco opcional", Price: "S/ 24", Image: "https://images.unsplash.com/photo-1661416958387-00c93ada91ae?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxzYW5kd2ljaCUyMGNvb2tpZSUyMGR1bGNlJTIwbGVjaGV8ZW58MXx8fHwxNzYyNDkzNjk5fDA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Pastel Tres Leches", Description: "Bizcocho, mezcla de tres leches, crema batida", Price: "S/ 27", Image: "https://images.unsplash.com/photo-1745356979337-03a263a39beb?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHx0cmVzJTIwbGVjaGVzJTIwc29ha2VkJTIwY2FrZXxlbnwxfHx8fDE3NjI0OTM3MDB8MA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Cheesecake de Maracuyá", Description: "Base de galleta, crema de queso, coulis de maracuyá", Price: "S/ 29", Image: "https://images.unsplash.com/photo-1622322076203-25ae52e5d0c5?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxwYXNzaW9uJTIwZnJ1aXQlMjBjaGVlc2VjYWtlJTIwc2xpY2V8ZW58MXx8fHwxNzYyNDkzNzAwfDA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Crème Brûlée", Description: "Crema de vainilla, yemas, azúcar caramelizada", Price: "S/ 30", Image: "https://images.unsplash.com/photo-1637194502327-c99c94943680?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxjcmVtZSUyMGJydWxlZSUyMGNhcmFtZWxpemVkJTIwdG9wfGVufDF8fHx8MTc2MjQ5MzcwMHww&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Tiramisú", Description: "Bizcotelas, café, mascarpone, cacao", Price: "S/ 28", Image: "https://images.unsplash.com/photo-1727056353430-101a9d47d9b2?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHx0aXJhbWlzdSUyMGRlc3NlcnQlMjBsYXllcmVkfGVufDF8fHx8MTc2MjQ5MzcwNXww&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Churros con Chocolate", Description: "Masa frita, azúcar, salsa de chocolate", Price: "S/ 23", Image: "https://images.unsplash.com/photo-1611516081814-55d97d5a7488?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxjaHVycm9zJTIwY2hvY29sYXRlJTIwZGlwcGluZyUyMHNhdWNlfGVufDF8fHx8MTc2MjQ5MzcwNXww&ixlib=rb-4.1.0&q=80&w=1080"},
    }},
    {Key: "bebidas", Title: "Bebidas", Items: []model.MenuItem{
        {Name: "Chicha Morada", Description: "Maíz morado, piña, canela, clavo, limón", Price: "S/ 12", Image: "https://images.unsplash.com/photo-1604232907795-1e7414976795?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxwdXJwbGUlMjBjb3JuJTIwZHJpbmslMjBwZXJ1dmlhbnxlbnwxfHx8fDE3NjI0OTM3MDZ8MA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Emoliente", Description: "Cebada, linaza, cola de caballo, limón, hierbas", Price: "S/ 10", Image: "https://images.unsplash.com/photo-1762328868620-76572366d607?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxoZXJiYWwlMjB0ZWElMjBob3QlMjBkcmlua3xlbnwxfHx8fDE3NjI0OTM3MDZ8MA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Pisco Sour", Description: "Pisco, jugo de limón, jarabe, clara de huevo, amargo", Price: "S/ 28", Image: "https://images.unsplash.com/photo-1725790803859-edc661663bb4?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxwaXNjbyUyMHNvdXIlMjBjb2NrdGFpbCUyMGZvYW18ZW58MXx8fHwxNzYyNDkzNzA3fDA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Chilcano de Pisco", Description: "Pisco, ginger ale, limón, amargo", Price: "S/ 26", Image: "https://images.unsplash.com/photo-1757955787582-1b1ea531e1b5?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxnaW5nZXIlMjBjb2NrdGFpbCUyMHJlZnJlc2hpbmclMjBkcmlua3xlbnwxfHx8fDE3NjI0OTM3MDd8MA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Maracuyá Sour", Description: "Pisco, maracuyá, limón, jarabe, clara", Price: "S/ 30", Image: "https://images.unsplash.com/photo-1725790803859-edc661663bb4?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxwYXNzaW9uJTIwZnJ1aXQlMjBzb3VyJTIwY29ja3RhaWx8ZW58MXx8fHwxNzYyNDkzNzA3fDA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Inca Kola", Description: "Gaseosa peruana sabor hierba luisa", Price: "S/ 8", Image: "https://images.unsplash.com/photo-1746635748701-81a5ae05f3dc?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHx5ZWxsb3clMjBzb2RhJTIwYm90dGxlJTIwZ2xhc3N8ZW58MXx8fHwxNzYyNDkzNzA5fDA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Chicha de Jora", Description: "Maíz fermentado, agua, especias", Price: "S/ 15", Image: "https://images.unsplash.com/photo-1641053336141-8b0339f48f23?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxjb3JuJTIwZmVybWVudGVkJTIwZHJpbmslMjB0cmFkaXRpb25hbHxlbnwxfHx8fDE3NjI0OTM3MDl8MA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Cerveza Artesanal Peruana", Description: "Maltas, lúpulo, levadura (estilo rotativo)", Price: "S/ 18", Image: "https://images.unsplash.com/photo-1759306441537-7fae35fec66f?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxjcmFmdCUyMGJlZXIlMjBhbWJlciUyMGdsYXNzfGVufDF8fHx8MTc2MjQ5MzcwOXww&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Mate de Coca", Description: "Hojas de coca, agua caliente", Price: "S/ 8", Image: "https://images.unsplash.com/photo-1758221052634-33f352d1318b?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxjb2NhJTIwbGVhZiUyMHRlYSUyMGhvdHxlbnwxfHx8fDE3NjI0OTM3MDl8MA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Agua con Gas", Description: "Agua mineral carbonatada", Price: "S/ 6", Image: "https://images.unsplash.com/photo-1629743094483-f1d068ddb29c?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxzcGFya2xpbmclMjB3YXRlciUyMGdsYXNzJTIwYm90dGxlfGVufDF8fHx8MTc2MjQ5MzcxMHww&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Limonada Frozen", Description: "Limón, hielo, azúcar, hierbabuena", Price: "S/ 14", Image: "https://images.unsplash.com/photo-1720787714611-41dbdc75d419?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxmcm96ZW4lMjBsZW1vbmFkZSUyMHNsdXNoeSUyMGljZXxlbnwxfHx8fDE3NjI0OTM3MTB8MA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Mojito", Description: "Ron, hierbabuena, lima, azúcar, soda", Price: "S/ 24", Image: "https://images.unsplash.com/photo-1676105797000-323c37de780c?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxtb2ppdG8lMjBtaW50JTIwY29ja3RhaWwlMjBmcmVzaHxlbnwxfHx8fDE3NjI0OTM3MTF8MA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Caipiriña", Description: "Cachaça, lima, azúcar, hielo", Price: "S/ 25", Image: "https://images.unsplash.com/photo-1625860448256-142933059c77?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxjYWlwaXJpbmhhJTIwYnJhemlsaWFuJTIwY29ja3RhaWwlMjBsaW1lfGVufDF8fHx8MTc2MjQ5MzcxMXww&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Aperol Spritz", Description: "Aperol, prosecco, soda, naranja", Price: "S/ 27", Image: "https://images.unsplash.com/photo-1610307540315-0d3f322403ff?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxhcGVyb2wlMjBzcHJpdHolMjBvcmFuZ2UlMjBkcmlua3xlbnwxfHx8fDE3NjI0OTM3MTF8MA&ixlib=rb-4.1.0&q=80&w=1080"},
        {Name: "Café Peruano de Altura", Description: "Granos arábica de altura, extracción espresso/prensa", Price: "S/ 10", Image: "https://images.unsplash.com/photo-1666196389175-630e3b80ad91?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&ixid=M3w3Nzg4Nzd8MHwxfHNlYXJjaHwxfHxwZXJ1dmlhbiUyMGNvZmZlZSUyMGN1cCUyMGVzcHJlc3NvfGVufDF8fHx8MTc2MjQ5MzcxMnww&ixlib=rb-4.1.0&q=80&w=1080"},
    }},
}
